package services

import (
	"context"
	"fmt"

	"github.com/bookclub/backend/internal/entities"
)

// WeekService manages the weekly reading schedule of a book.
type WeekService struct {
	weeks    WeekStore
	books    BookStore
	chapters ChapterStore
}

func NewWeekService(weeks WeekStore, books BookStore, chapters ChapterStore) *WeekService {
	return &WeekService{weeks: weeks, books: books, chapters: chapters}
}

// CreateWeek persists a week for an existing book.
func (s *WeekService) CreateWeek(ctx context.Context, week *entities.Week) (*entities.Week, error) {
	week.ID = 0
	if err := validateEntity(week); err != nil {
		return nil, err
	}
	exists, err := s.books.BookExists(ctx, week.BookID)
	if err := requireParent(exists, err, "book", week.BookID); err != nil {
		return nil, err
	}
	if err := s.weeks.CreateWeek(ctx, week); err != nil {
		return nil, fmt.Errorf("failed to create week: %w", err)
	}
	return week, nil
}

func (s *WeekService) GetWeekByID(ctx context.Context, id uint64) (*entities.Week, error) {
	week, err := s.weeks.GetWeekByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "week", id)
	}
	return week, nil
}

// GetWeeksByBook returns the weeks of a book ordered by week number.
// An unknown book yields an empty list.
func (s *WeekService) GetWeeksByBook(ctx context.Context, bookID uint64) ([]entities.Week, error) {
	weeks, err := s.weeks.GetWeeksByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weeks for book %d: %w", bookID, err)
	}
	return weeks, nil
}

// GetChaptersForWeek returns the chapters of an existing week ordered by chapter number.
func (s *WeekService) GetChaptersForWeek(ctx context.Context, weekID uint64) ([]entities.Chapter, error) {
	exists, err := s.weeks.WeekExists(ctx, weekID)
	if err := requireExisting(exists, err, "week", weekID); err != nil {
		return nil, err
	}
	chapters, err := s.chapters.GetChaptersByWeek(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapters for week %d: %w", weekID, err)
	}
	return chapters, nil
}

// UpdateWeek copies title, dates and week number from details.
func (s *WeekService) UpdateWeek(ctx context.Context, id uint64, details entities.Week) (*entities.Week, error) {
	week, err := s.weeks.GetWeekByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "week", id)
	}

	week.Title = details.Title
	week.StartDate = details.StartDate
	week.EndDate = details.EndDate
	week.WeekNumber = details.WeekNumber

	if err := validateEntity(week); err != nil {
		return nil, err
	}
	if err := s.weeks.UpdateWeek(ctx, week); err != nil {
		return nil, fmt.Errorf("failed to update week %d: %w", id, err)
	}
	return week, nil
}

// DeleteWeek removes a week with its chapters, questions, comments and answers.
func (s *WeekService) DeleteWeek(ctx context.Context, id uint64) error {
	exists, err := s.weeks.WeekExists(ctx, id)
	if err := requireExisting(exists, err, "week", id); err != nil {
		return err
	}
	if err := s.weeks.DeleteWeek(ctx, id); err != nil {
		return fmt.Errorf("failed to delete week %d: %w", id, err)
	}
	return nil
}
