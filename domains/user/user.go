package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role names seeded by the migration command.
const (
	RoleAdministrator = "Administrator"
	RoleSubscriber    = "Subscriber"
)

// User represents a registered account. Deletion is soft: rows keep their
// audit trail and are excluded from queries via DeletedAt.
type User struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Name         string         `json:"name" gorm:"not null"`
	Lastname     string         `json:"lastname" gorm:"not null"`
	Birthdate    *time.Time     `json:"birthdate,omitempty"`
	Roles        []Role         `json:"roles,omitempty" gorm:"many2many:user_roles"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

type Role struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"unique;not null"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Permission struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new instance with a generated ID.
func NewUser(email, passwordHash, name, lastname string, birthdate *time.Time) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Lastname:     lastname,
		Birthdate:    birthdate,
	}
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// HasPermission is a flat name-equality lookup across the user's roles.
// Permissions must be preloaded.
func (u *User) HasPermission(name string) bool {
	for _, r := range u.Roles {
		for _, p := range r.Permissions {
			if p.Name == name {
				return true
			}
		}
	}
	return false
}

// UpdateUserRequest carries the mutable profile fields.
type UpdateUserRequest struct {
	Name      string     `json:"name"`
	Lastname  string     `json:"lastname"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

// IUserRepository defines persistence for users and their role graph.
type IUserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByIDWithPermissions(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SoftDelete(ctx context.Context, id string) error
	AssignRole(ctx context.Context, userID, roleName string) error
}

// IUserUsecase defines the business logic for user management.
type IUserUsecase interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, request UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id string) error
}
