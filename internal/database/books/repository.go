// Package books provides database operations for books.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetActiveBook(ctx)
package books

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/database"
	"github.com/bookclub/backend/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a book. An active book is inserted inactive and then
// activated in the same transaction, so every other book is cleared.
func (r *Repository) CreateBook(ctx context.Context, book *entities.Book) error {
	if !book.IsActive {
		return r.db.WithContext(ctx).Create(book).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBooks(tx); err != nil {
			return err
		}
		book.IsActive = false
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		if err := activateOnly(tx, book.ID); err != nil {
			return err
		}
		book.IsActive = true
		return nil
	})
}

// GetBookByID retrieves a book by ID.
func (r *Repository) GetBookByID(ctx context.Context, id uint64) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetActiveBook retrieves the book flagged as active.
func (r *Repository) GetActiveBook(ctx context.Context) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves every book ordered by ID.
func (r *Repository) GetAllBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	return books, err
}

// SetActiveBook makes the given book the only active one.
// Returns gorm.ErrRecordNotFound without touching any row if the book does not exist.
func (r *Repository) SetActiveBook(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBooks(tx); err != nil {
			return err
		}
		var book entities.Book
		if err := tx.Select("id").First(&book, id).Error; err != nil {
			return err
		}
		return activateOnly(tx, id)
	})
}

// DeleteBook removes a book together with its weeks and everything below them.
func (r *Repository) DeleteBook(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return database.DeleteBooks(tx, []uint64{id})
	})
}

// BookExists reports whether a book with the given ID exists.
func (r *Repository) BookExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// activateOnly rewrites is_active on every row in one statement, so the
// target ends up the only active book.
func activateOnly(tx *gorm.DB, id uint64) error {
	return tx.Model(&entities.Book{}).Where("1 = 1").Update("is_active", gorm.Expr("id = ?", id)).Error
}

// lockBooks serializes writers to books on postgres until the transaction ends.
// sqlite transactions already hold the write lock from BEGIN IMMEDIATE.
func lockBooks(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("LOCK TABLE books IN SHARE ROW EXCLUSIVE MODE").Error
}
