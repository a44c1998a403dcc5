// Package interfaces documents the core abstractions used throughout the application.
//
// # Layers
//
// Requests flow through three layers, each depending on interfaces owned by
// the layer above it:
//
//	internal/http       controllers; owns BookService, WeekService, ... (stores.go)
//	internal/services   business rules; owns BookStore, WeekStore, ... (interfaces.go)
//	internal/database   gorm repositories, one sub-package per entity
//
// Repositories return raw gorm errors. Services translate missing rows and
// unique violations into services.ErrNotFound, ErrConflict, ErrValidation and
// ErrUnauthorized. Controllers map those onto HTTP status codes in
// respondServiceError (internal/http/helpers.go).
//
// # Adding a New Entity
//
//  1. Add the model to internal/entities and to database.Models.
//
//  2. Create sub-package internal/database/<entity>/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. If the entity has children, extend the cascade helpers in
//     internal/database/cascade.go so deletes stay transactional.
//
//  4. Declare the store interface in internal/services/interfaces.go and the
//     service interface in internal/http/stores.go.
//
//  5. Add compile-time checks to checks.go:
//
//     var _ services.ThingStore = (*things.Repository)(nil)
//     var _ http.ThingService = (*services.ThingService)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
