package fetchlog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogFetch(ctx context.Context, entry FetchLog) error
}

type FetchSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &FetchSQLRepository{db: db}
}

func (r *FetchSQLRepository) LogFetch(ctx context.Context, entry FetchLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(&entry).Error
}
