// Package comments provides database operations for chapter comments.
//
// Comments are always read with their author preloaded.
package comments

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookclub/backend/internal/entities"
)

// Repository handles all comment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateComment inserts a comment. CreatedAt is stamped by gorm when zero.
func (r *Repository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// GetCommentByID retrieves a comment by ID.
func (r *Repository) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByChapter retrieves the comments of a chapter, newest first.
func (r *Repository) GetCommentsByChapter(ctx context.Context, chapterID uint64) ([]entities.Comment, error) {
	comments := []entities.Comment{}
	err := r.db.WithContext(ctx).Preload("User").Where("chapter_id = ?", chapterID).
		Order("created_at DESC, id DESC").Find(&comments).Error
	return comments, err
}

// UpdateComment persists a previously fetched comment. UpdatedAt is refreshed.
func (r *Repository) UpdateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(comment).Error
}

// DeleteComment removes a comment.
func (r *Repository) DeleteComment(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&entities.Comment{}, id).Error
}
