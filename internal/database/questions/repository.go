// Package questions provides database operations for weekly discussion questions.
package questions

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/database"
	"github.com/bookclub/backend/internal/entities"
)

// Repository handles all weekly question database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new questions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateQuestion inserts a question.
func (r *Repository) CreateQuestion(ctx context.Context, question *entities.WeeklyQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// GetQuestionByID retrieves a question by ID.
func (r *Repository) GetQuestionByID(ctx context.Context, id uint64) (*entities.WeeklyQuestion, error) {
	var question entities.WeeklyQuestion
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetQuestionsByWeek retrieves the questions of a week in creation order.
func (r *Repository) GetQuestionsByWeek(ctx context.Context, weekID uint64) ([]entities.WeeklyQuestion, error) {
	questions := []entities.WeeklyQuestion{}
	err := r.db.WithContext(ctx).Where("week_id = ?", weekID).
		Order("created_at ASC, id ASC").Find(&questions).Error
	return questions, err
}

// UpdateQuestion persists all columns of a previously fetched question.
func (r *Repository) UpdateQuestion(ctx context.Context, question *entities.WeeklyQuestion) error {
	return r.db.WithContext(ctx).Save(question).Error
}

// DeleteQuestion removes a question and its answers.
func (r *Repository) DeleteQuestion(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return database.DeleteQuestions(tx, []uint64{id})
	})
}

// QuestionExists reports whether a question with the given ID exists.
func (r *Repository) QuestionExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.WeeklyQuestion{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
