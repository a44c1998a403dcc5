// Package weeks provides database operations for the weeks of a book.
package weeks

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookclub/backend/internal/database"
	"github.com/bookclub/backend/internal/entities"
)

// Repository handles all week database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new weeks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWeek inserts a week.
func (r *Repository) CreateWeek(ctx context.Context, week *entities.Week) error {
	return r.db.WithContext(ctx).Create(week).Error
}

// GetWeekByID retrieves a week by ID.
func (r *Repository) GetWeekByID(ctx context.Context, id uint64) (*entities.Week, error) {
	var week entities.Week
	err := r.db.WithContext(ctx).First(&week, id).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// GetWeeksByBook retrieves the weeks of a book ordered by week number.
func (r *Repository) GetWeeksByBook(ctx context.Context, bookID uint64) ([]entities.Week, error) {
	weeks := []entities.Week{}
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).
		Order("week_number ASC, id ASC").Find(&weeks).Error
	return weeks, err
}

// UpdateWeek persists all columns of a previously fetched week.
func (r *Repository) UpdateWeek(ctx context.Context, week *entities.Week) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(week).Error
}

// DeleteWeek removes a week with its chapters, questions, comments and answers.
func (r *Repository) DeleteWeek(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return database.DeleteWeeks(tx, []uint64{id})
	})
}

// WeekExists reports whether a week with the given ID exists.
func (r *Repository) WeekExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Week{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
