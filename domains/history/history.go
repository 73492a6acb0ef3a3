package history

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Action string

const (
	ActionSearch Action = "search"
	ActionView   Action = "view"
)

type Entity string

const (
	EntityFeed  Entity = "Feed"
	EntityPhoto Entity = "Photo"
)

// History is an immutable action record tied to an authenticated actor.
// Rows are append-only: created once per qualifying lookup, never updated.
type History struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string         `json:"user_id" gorm:"index;not null"`
	Action    Action         `json:"action" gorm:"not null"`
	Value     string         `json:"value" gorm:"not null"`
	Entity    Entity         `json:"entity" gorm:"not null"`
	EntityID  *string        `json:"entity_id,omitempty"`
	CreatedBy string         `json:"created_by,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// IHistoryRepository appends audit records. The feed core only ever creates;
// it never reads records back.
type IHistoryRepository interface {
	Record(ctx context.Context, entry *History) error
}
