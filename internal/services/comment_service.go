package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bookclub/backend/internal/entities"
)

// CommentService manages user comments on chapters.
type CommentService struct {
	comments CommentStore
	chapters ChapterStore
	users    UserStore
}

func NewCommentService(comments CommentStore, chapters ChapterStore, users UserStore) *CommentService {
	return &CommentService{comments: comments, chapters: chapters, users: users}
}

// CreateComment persists a comment by an existing user on an existing chapter.
// The returned comment embeds its author.
func (s *CommentService) CreateComment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	comment.ID = 0
	comment.User = nil
	comment.CreatedAt = time.Time{}
	comment.UpdatedAt = time.Time{}

	if err := validateEntity(comment); err != nil {
		return nil, err
	}
	exists, err := s.chapters.ChapterExists(ctx, comment.ChapterID)
	if err := requireParent(exists, err, "chapter", comment.ChapterID); err != nil {
		return nil, err
	}
	exists, err = s.users.UserExists(ctx, comment.UserID)
	if err := requireParent(exists, err, "user", comment.UserID); err != nil {
		return nil, err
	}

	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return s.GetCommentByID(ctx, comment.ID)
}

func (s *CommentService) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	comment, err := s.comments.GetCommentByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "comment", id)
	}
	return comment, nil
}

// GetCommentsByChapter returns the comments of a chapter, newest first.
func (s *CommentService) GetCommentsByChapter(ctx context.Context, chapterID uint64) ([]entities.Comment, error) {
	comments, err := s.comments.GetCommentsByChapter(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for chapter %d: %w", chapterID, err)
	}
	return comments, nil
}

// UpdateComment replaces the content of a comment.
func (s *CommentService) UpdateComment(ctx context.Context, id uint64, content string) (*entities.Comment, error) {
	comment, err := s.comments.GetCommentByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "comment", id)
	}

	comment.Content = content
	if err := validateEntity(comment); err != nil {
		return nil, err
	}
	if err := s.comments.UpdateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", id, err)
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint64) error {
	if _, err := s.comments.GetCommentByID(ctx, id); err != nil {
		return lookupError(err, "comment", id)
	}
	if err := s.comments.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, err)
	}
	return nil
}
