package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bookclub/backend/internal/entities"
)

// QuestionService manages the weekly discussion questions.
type QuestionService struct {
	questions QuestionStore
	weeks     WeekStore
	answers   AnswerStore
}

func NewQuestionService(questions QuestionStore, weeks WeekStore, answers AnswerStore) *QuestionService {
	return &QuestionService{questions: questions, weeks: weeks, answers: answers}
}

// CreateQuestion persists a question for an existing week.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *entities.WeeklyQuestion) (*entities.WeeklyQuestion, error) {
	question.ID = 0
	question.CreatedAt = time.Time{}

	if err := validateEntity(question); err != nil {
		return nil, err
	}
	exists, err := s.weeks.WeekExists(ctx, question.WeekID)
	if err := requireParent(exists, err, "week", question.WeekID); err != nil {
		return nil, err
	}
	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

func (s *QuestionService) GetQuestionByID(ctx context.Context, id uint64) (*entities.WeeklyQuestion, error) {
	question, err := s.questions.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "question", id)
	}
	return question, nil
}

func (s *QuestionService) GetQuestionsByWeek(ctx context.Context, weekID uint64) ([]entities.WeeklyQuestion, error) {
	questions, err := s.questions.GetQuestionsByWeek(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for week %d: %w", weekID, err)
	}
	return questions, nil
}

// GetAnswersForQuestion returns the answers of an existing question, oldest first.
func (s *QuestionService) GetAnswersForQuestion(ctx context.Context, questionID uint64) ([]entities.QuestionAnswer, error) {
	exists, err := s.questions.QuestionExists(ctx, questionID)
	if err := requireExisting(exists, err, "question", questionID); err != nil {
		return nil, err
	}
	answers, err := s.answers.GetAnswersByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers for question %d: %w", questionID, err)
	}
	return answers, nil
}

// UpdateQuestion replaces the question text.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint64, text string) (*entities.WeeklyQuestion, error) {
	question, err := s.questions.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "question", id)
	}

	question.Question = text
	if err := validateEntity(question); err != nil {
		return nil, err
	}
	if err := s.questions.UpdateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to update question %d: %w", id, err)
	}
	return question, nil
}

// DeleteQuestion removes a question and its answers.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint64) error {
	exists, err := s.questions.QuestionExists(ctx, id)
	if err := requireExisting(exists, err, "question", id); err != nil {
		return err
	}
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}
