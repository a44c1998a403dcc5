package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/entities"
)

// BookService manages books and the single active selection.
type BookService struct {
	books BookStore
	weeks WeekStore
}

func NewBookService(books BookStore, weeks WeekStore) *BookService {
	return &BookService{books: books, weeks: weeks}
}

// GetCurrentBook returns the active book.
func (s *BookService) GetCurrentBook(ctx context.Context) (*entities.Book, error) {
	book, err := s.books.GetActiveBook(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no active book", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active book: %w", err)
	}
	return book, nil
}

func (s *BookService) GetAllBooks(ctx context.Context) ([]entities.Book, error) {
	books, err := s.books.GetAllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (s *BookService) GetBookByID(ctx context.Context, id uint64) (*entities.Book, error) {
	book, err := s.books.GetBookByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "book", id)
	}
	return book, nil
}

// CreateBook persists a new book. When the book is active every other book
// is deactivated in the same transaction.
func (s *BookService) CreateBook(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	book.ID = 0
	if err := validateEntity(book); err != nil {
		return nil, err
	}
	if err := s.books.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// SetActiveBook makes the book the only active one.
func (s *BookService) SetActiveBook(ctx context.Context, id uint64) error {
	if err := s.books.SetActiveBook(ctx, id); err != nil {
		return lookupError(err, "book", id)
	}
	return nil
}

// GetWeeksForBook returns the weeks of a book ordered by week number.
func (s *BookService) GetWeeksForBook(ctx context.Context, bookID uint64) ([]entities.Week, error) {
	exists, err := s.books.BookExists(ctx, bookID)
	if err := requireExisting(exists, err, "book", bookID); err != nil {
		return nil, err
	}
	weeks, err := s.weeks.GetWeeksByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weeks for book %d: %w", bookID, err)
	}
	return weeks, nil
}

// DeleteBook removes a book and everything that belongs to it.
func (s *BookService) DeleteBook(ctx context.Context, id uint64) error {
	exists, err := s.books.BookExists(ctx, id)
	if err := requireExisting(exists, err, "book", id); err != nil {
		return err
	}
	if err := s.books.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}
