package repository

import (
	"context"

	"gorm.io/gorm"

	domainHistory "github.com/AzielCF/az-photofeed/domains/history"
)

type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// AutoMigrate ensures the histories table exists.
func (r *GormHistoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domainHistory.History{})
}

// Record appends an audit row. There is no update or read path here; the
// table is append-only from the application's point of view.
func (r *GormHistoryRepository) Record(ctx context.Context, entry *domainHistory.History) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
