// Package answers provides database operations for answers to weekly questions.
//
// Answers are always read with their author preloaded.
package answers

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookclub/backend/internal/entities"
)

// Repository handles all answer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new answers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAnswer inserts an answer. A second answer by the same user to the
// same question fails with gorm.ErrDuplicatedKey.
func (r *Repository) CreateAnswer(ctx context.Context, answer *entities.QuestionAnswer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(answer).Error
}

// GetAnswerByID retrieves an answer by ID.
func (r *Repository) GetAnswerByID(ctx context.Context, id uint64) (*entities.QuestionAnswer, error) {
	var answer entities.QuestionAnswer
	err := r.db.WithContext(ctx).Preload("User").First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// GetAnswersByQuestion retrieves the answers to a question in creation order.
func (r *Repository) GetAnswersByQuestion(ctx context.Context, questionID uint64) ([]entities.QuestionAnswer, error) {
	answers := []entities.QuestionAnswer{}
	err := r.db.WithContext(ctx).Preload("User").Where("question_id = ?", questionID).
		Order("created_at ASC, id ASC").Find(&answers).Error
	return answers, err
}

// GetAnswerByQuestionAndUser retrieves the answer a user gave to a question.
func (r *Repository) GetAnswerByQuestionAndUser(ctx context.Context, questionID, userID uint64) (*entities.QuestionAnswer, error) {
	var answer entities.QuestionAnswer
	err := r.db.WithContext(ctx).Preload("User").
		Where("question_id = ? AND user_id = ?", questionID, userID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// UpdateAnswer persists a previously fetched answer. UpdatedAt is refreshed.
func (r *Repository) UpdateAnswer(ctx context.Context, answer *entities.QuestionAnswer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(answer).Error
}

// DeleteAnswer removes an answer.
func (r *Repository) DeleteAnswer(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&entities.QuestionAnswer{}, id).Error
}
