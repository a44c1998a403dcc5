package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/entities"
)

// AnswerService manages answers to weekly questions. A user answers a
// question at most once.
type AnswerService struct {
	answers   AnswerStore
	questions QuestionStore
	users     UserStore
}

func NewAnswerService(answers AnswerStore, questions QuestionStore, users UserStore) *AnswerService {
	return &AnswerService{answers: answers, questions: questions, users: users}
}

// CreateAnswer persists the first answer of a user to a question.
// The returned answer embeds its author.
func (s *AnswerService) CreateAnswer(ctx context.Context, answer *entities.QuestionAnswer) (*entities.QuestionAnswer, error) {
	answer.ID = 0
	answer.User = nil
	answer.CreatedAt = time.Time{}
	answer.UpdatedAt = time.Time{}

	if err := validateEntity(answer); err != nil {
		return nil, err
	}
	exists, err := s.questions.QuestionExists(ctx, answer.QuestionID)
	if err := requireParent(exists, err, "question", answer.QuestionID); err != nil {
		return nil, err
	}
	exists, err = s.users.UserExists(ctx, answer.UserID)
	if err := requireParent(exists, err, "user", answer.UserID); err != nil {
		return nil, err
	}

	_, err = s.answers.GetAnswerByQuestionAndUser(ctx, answer.QuestionID, answer.UserID)
	switch {
	case err == nil:
		return nil, alreadyAnswered(answer)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to check existing answer: %w", err)
	}

	if err := s.answers.CreateAnswer(ctx, answer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, alreadyAnswered(answer)
		}
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}
	return s.GetAnswerByID(ctx, answer.ID)
}

func (s *AnswerService) GetAnswerByID(ctx context.Context, id uint64) (*entities.QuestionAnswer, error) {
	answer, err := s.answers.GetAnswerByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "answer", id)
	}
	return answer, nil
}

// GetAnswersByQuestion returns the answers of a question, oldest first.
// An unknown question yields an empty list.
func (s *AnswerService) GetAnswersByQuestion(ctx context.Context, questionID uint64) ([]entities.QuestionAnswer, error) {
	answers, err := s.answers.GetAnswersByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers for question %d: %w", questionID, err)
	}
	return answers, nil
}

func (s *AnswerService) GetAnswerByQuestionAndUser(ctx context.Context, questionID, userID uint64) (*entities.QuestionAnswer, error) {
	answer, err := s.answers.GetAnswerByQuestionAndUser(ctx, questionID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: answer by user %d to question %d", ErrNotFound, userID, questionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}
	return answer, nil
}

// UpdateAnswer replaces the answer text.
func (s *AnswerService) UpdateAnswer(ctx context.Context, id uint64, text string) (*entities.QuestionAnswer, error) {
	answer, err := s.answers.GetAnswerByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "answer", id)
	}

	answer.Answer = text
	if err := validateEntity(answer); err != nil {
		return nil, err
	}
	if err := s.answers.UpdateAnswer(ctx, answer); err != nil {
		return nil, fmt.Errorf("failed to update answer %d: %w", id, err)
	}
	return answer, nil
}

func (s *AnswerService) DeleteAnswer(ctx context.Context, id uint64) error {
	if _, err := s.answers.GetAnswerByID(ctx, id); err != nil {
		return lookupError(err, "answer", id)
	}
	if err := s.answers.DeleteAnswer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete answer %d: %w", id, err)
	}
	return nil
}

func alreadyAnswered(answer *entities.QuestionAnswer) error {
	return fmt.Errorf("%w: user %d already answered question %d", ErrConflict, answer.UserID, answer.QuestionID)
}
