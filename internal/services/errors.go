package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Every error returned by a service that is not an internal
// failure wraps exactly one of these; match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// lookupError turns a missing row into ErrNotFound and passes anything else through.
func lookupError(err error, entity string, id uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return err
}

// requireParent fails with ErrValidation when a referenced parent row is missing.
func requireParent(exists bool, err error, entity string, id uint64) error {
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", entity, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %d does not exist", ErrValidation, entity, id)
	}
	return nil
}

// requireExisting fails with ErrNotFound when the row to operate on is missing.
func requireExisting(exists bool, err error, entity string, id uint64) error {
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", entity, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return nil
}
