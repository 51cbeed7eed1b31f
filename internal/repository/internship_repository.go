package repository

import (
	"context"

	"gorm.io/gorm"

	"internmatch/internal/model"
)

// InternshipRepository defines catalog persistence operations.
// All listings are ordered by creation time.
type InternshipRepository interface {
	Create(ctx context.Context, internship *model.Internship) error
	List(ctx context.Context) ([]model.Internship, error)
	Search(ctx context.Context, keyword string) ([]model.Internship, error)
	FindByCategory(ctx context.Context, category string) ([]model.Internship, error)
}

type internshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository creates a new internship repository.
func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &internshipRepository{db: db}
}

func (r *internshipRepository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC")
}

// Create stores a new internship.
func (r *internshipRepository) Create(ctx context.Context, internship *model.Internship) error {
	return r.db.WithContext(ctx).Create(internship).Error
}

// List returns the whole catalog.
func (r *internshipRepository) List(ctx context.Context) ([]model.Internship, error) {
	internships := make([]model.Internship, 0)
	if err := r.ordered(ctx).Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}

// Search matches keyword case-insensitively as a substring of name, organization or description.
// Both sides are folded by the database's LOWER, so case folding follows the backend:
// SQLite folds ASCII only, MySQL and Postgres fold per collation/locale.
// Wildcard characters in keyword are not escaped.
func (r *internshipRepository) Search(ctx context.Context, keyword string) ([]model.Internship, error) {
	pattern := "%" + keyword + "%"
	internships := make([]model.Internship, 0)
	if err := r.ordered(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(organization) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern, pattern).
		Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}

// FindByCategory returns internships whose category equals category exactly.
func (r *internshipRepository) FindByCategory(ctx context.Context, category string) ([]model.Internship, error) {
	rows := make([]model.Internship, 0)
	if err := r.ordered(ctx).Where("category = ?", category).Find(&rows).Error; err != nil {
		return nil, err
	}

	// Column collation may be case-insensitive (MySQL default).
	internships := make([]model.Internship, 0, len(rows))
	for _, in := range rows {
		if in.Category == category {
			internships = append(internships, in)
		}
	}
	return internships, nil
}
