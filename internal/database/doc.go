// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, driver selection, migrations
//	├── cascade.go       # Transactional cascading deletes
//	├── dbtest/          # Throwaway sqlite databases for tests
//	├── books/           # Books and the active selection
//	├── weeks/           # Weekly schedule of a book
//	├── chapters/        # Chapters of a week
//	├── comments/        # Chapter comments
//	├── users/           # Club members
//	├── questions/       # Weekly discussion questions
//	└── answers/         # Answers to weekly questions
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase(cfg.Database)
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	weeksRepo := weeks.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetActiveBook(ctx)
//	weeks, err := weeksRepo.GetWeeksByBook(ctx, book.ID)
//
// Missing rows surface as gorm.ErrRecordNotFound and unique violations as
// gorm.ErrDuplicatedKey (error translation is enabled on the connection).
//
// # Cascades
//
// Deleting a parent removes its children in the same transaction:
//
//	book -> weeks -> chapters -> comments
//	              -> questions -> answers
//	user -> comments, answers
//
// # Interface Implementations
//
// Each repository implements the matching store interface in
// internal/services; see internal/interfaces/checks.go.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
