package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/auth"
	"github.com/bookclub/backend/internal/config"
	"github.com/bookclub/backend/internal/entities"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)

// UserService manages club members and their credentials.
type UserService struct {
	users      UserStore
	bcryptCost int
}

func NewUserService(users UserStore, cfg config.Auth) *UserService {
	return &UserService{users: users, bcryptCost: cfg.BcryptCost}
}

// CreateUser registers a user with a bcrypt hash of password.
func (s *UserService) CreateUser(ctx context.Context, user *entities.User, password string) (*entities.User, error) {
	user.ID = 0
	user.Username = strings.TrimSpace(user.Username)
	if err := validateEntity(user); err != nil {
		return nil, err
	}

	exists, err := s.users.UsernameExists(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, usernameTaken(user.Username)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, usernameTaken(user.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser copies email and current chapter from details.
func (s *UserService) UpdateUser(ctx context.Context, id uint64, details entities.User) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}

	user.Email = details.Email
	user.CurrentChapter = details.CurrentChapter
	return s.save(ctx, user)
}

// UpdateProgress records the chapter the user has read up to.
func (s *UserService) UpdateProgress(ctx context.Context, id uint64, chapterNumber int) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}

	user.CurrentChapter = chapterNumber
	return s.save(ctx, user)
}

// ChangeUsername renames a user. The new name must not belong to anyone else.
func (s *UserService) ChangeUsername(ctx context.Context, id uint64, username string) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}

	username = strings.TrimSpace(username)
	if username == user.Username {
		return user, nil
	}
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, usernameTaken(username)
	}

	user.Username = username
	return s.save(ctx, user)
}

// ChangePassword replaces the password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, id uint64, current, next string) error {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return lookupError(err, "user", id)
	}

	if err := auth.CheckPassword(current, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return fmt.Errorf("%w: current password does not match", ErrUnauthorized)
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}

	hash, err := s.hashPassword(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	_, err = s.save(ctx, user)
	return err
}

// DeleteUser removes a user together with their comments and answers.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	exists, err := s.users.UserExists(ctx, id)
	if err := requireExisting(exists, err, "user", id); err != nil {
		return err
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

func (s *UserService) save(ctx context.Context, user *entities.User) (*entities.User, error) {
	if err := validateEntity(user); err != nil {
		return nil, err
	}
	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, usernameTaken(user.Username)
		}
		return nil, fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func usernameTaken(username string) error {
	return fmt.Errorf("%w: username %q already exists", ErrConflict, username)
}
