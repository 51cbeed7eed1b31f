package repository

import (
	"context"

	"gorm.io/gorm"

	"internmatch/internal/model"
)

// TrackerRepository defines tracker persistence operations.
type TrackerRepository interface {
	Create(ctx context.Context, tracker *model.Tracker) error
	FindByID(ctx context.Context, id string) (*model.Tracker, error)
	ListByUsername(ctx context.Context, username string) ([]model.Tracker, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

type trackerRepository struct {
	db *gorm.DB
}

// NewTrackerRepository creates a new tracker repository.
func NewTrackerRepository(db *gorm.DB) TrackerRepository {
	return &trackerRepository{db: db}
}

func (r *trackerRepository) Create(ctx context.Context, tracker *model.Tracker) error {
	return r.db.WithContext(ctx).Create(tracker).Error
}

func (r *trackerRepository) FindByID(ctx context.Context, id string) (*model.Tracker, error) {
	var tracker model.Tracker
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tracker).Error; err != nil {
		return nil, err
	}
	return &tracker, nil
}

// ListByUsername returns the trackers owned by username, oldest first.
func (r *trackerRepository) ListByUsername(ctx context.Context, username string) ([]model.Tracker, error) {
	trackers := make([]model.Tracker, 0)
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at ASC").Order("id ASC").
		Find(&trackers).Error; err != nil {
		return nil, err
	}
	return trackers, nil
}

// UpdateFields applies fields and bumps updated_at.
func (r *trackerRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Tracker{}).
		Where("id = ?", id).
		Updates(fields).Error
}
