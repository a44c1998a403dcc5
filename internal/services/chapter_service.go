package services

import (
	"context"
	"fmt"

	"github.com/bookclub/backend/internal/entities"
)

type ChapterService struct {
	chapters ChapterStore
	weeks    WeekStore
}

func NewChapterService(chapters ChapterStore, weeks WeekStore) *ChapterService {
	return &ChapterService{chapters: chapters, weeks: weeks}
}

// CreateChapter persists a chapter for an existing week.
func (s *ChapterService) CreateChapter(ctx context.Context, chapter *entities.Chapter) (*entities.Chapter, error) {
	chapter.ID = 0
	if err := validateEntity(chapter); err != nil {
		return nil, err
	}
	exists, err := s.weeks.WeekExists(ctx, chapter.WeekID)
	if err := requireParent(exists, err, "week", chapter.WeekID); err != nil {
		return nil, err
	}
	if err := s.chapters.CreateChapter(ctx, chapter); err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	return chapter, nil
}

func (s *ChapterService) GetChapterByID(ctx context.Context, id uint64) (*entities.Chapter, error) {
	chapter, err := s.chapters.GetChapterByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "chapter", id)
	}
	return chapter, nil
}

func (s *ChapterService) GetChaptersByWeek(ctx context.Context, weekID uint64) ([]entities.Chapter, error) {
	chapters, err := s.chapters.GetChaptersByWeek(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapters for week %d: %w", weekID, err)
	}
	return chapters, nil
}

// UpdateChapter copies chapter number and title from details.
func (s *ChapterService) UpdateChapter(ctx context.Context, id uint64, details entities.Chapter) (*entities.Chapter, error) {
	chapter, err := s.chapters.GetChapterByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "chapter", id)
	}

	chapter.ChapterNumber = details.ChapterNumber
	chapter.Title = details.Title

	if err := validateEntity(chapter); err != nil {
		return nil, err
	}
	if err := s.chapters.UpdateChapter(ctx, chapter); err != nil {
		return nil, fmt.Errorf("failed to update chapter %d: %w", id, err)
	}
	return chapter, nil
}

func (s *ChapterService) DeleteChapter(ctx context.Context, id uint64) error {
	exists, err := s.chapters.ChapterExists(ctx, id)
	if err := requireExisting(exists, err, "chapter", id); err != nil {
		return err
	}
	if err := s.chapters.DeleteChapter(ctx, id); err != nil {
		return fmt.Errorf("failed to delete chapter %d: %w", id, err)
	}
	return nil
}
