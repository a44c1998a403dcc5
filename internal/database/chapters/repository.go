// Package chapters provides database operations for chapters.
package chapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookclub/backend/internal/database"
	"github.com/bookclub/backend/internal/entities"
)

// Repository handles all chapter database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new chapters repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateChapter inserts a chapter.
func (r *Repository) CreateChapter(ctx context.Context, chapter *entities.Chapter) error {
	return r.db.WithContext(ctx).Create(chapter).Error
}

// GetChapterByID retrieves a chapter by ID.
func (r *Repository) GetChapterByID(ctx context.Context, id uint64) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.WithContext(ctx).First(&chapter, id).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// GetChaptersByWeek retrieves the chapters of a week in reading order.
func (r *Repository) GetChaptersByWeek(ctx context.Context, weekID uint64) ([]entities.Chapter, error) {
	chapters := []entities.Chapter{}
	err := r.db.WithContext(ctx).Where("week_id = ?", weekID).
		Order("chapter_number ASC, id ASC").Find(&chapters).Error
	return chapters, err
}

// UpdateChapter persists all columns of a previously fetched chapter.
func (r *Repository) UpdateChapter(ctx context.Context, chapter *entities.Chapter) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(chapter).Error
}

// DeleteChapter removes a chapter and its comments.
func (r *Repository) DeleteChapter(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return database.DeleteChapters(tx, []uint64{id})
	})
}

// ChapterExists reports whether a chapter with the given ID exists.
func (r *Repository) ChapterExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Chapter{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
