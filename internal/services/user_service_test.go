package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclub/backend/internal/entities"
	"github.com/bookclub/backend/internal/services"
)

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	user, err := env.users.CreateUser(ctx, &entities.User{Username: "alice", Email: "alice@example.com"}, "s3cret-pass")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	var stored entities.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")

	_, err := env.users.CreateUser(ctx, &entities.User{Username: "alice"}, "another-pass")
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Equal(t, int64(1), env.count(t, &entities.User{}))
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		user     entities.User
		password string
	}{
		{name: "missing username", user: entities.User{}, password: "long-enough"},
		{name: "blank username", user: entities.User{Username: "   "}, password: "long-enough"},
		{name: "bad email", user: entities.User{Username: "bob", Email: "not-an-email"}, password: "long-enough"},
		{name: "short password", user: entities.User{Username: "bob"}, password: "short"},
		{name: "negative chapter", user: entities.User{Username: "bob", CurrentChapter: -1}, password: "long-enough"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.users.CreateUser(ctx, &tt.user, tt.password)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
	assert.Zero(t, env.count(t, &entities.User{}))
}

func TestUserService_Authenticate(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	created := env.createUser(t, "alice")

	user, err := env.users.Authenticate(ctx, "alice", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = env.users.Authenticate(ctx, "alice", "wrong-horse")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, err = env.users.Authenticate(ctx, "nobody", "correct-horse")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestUserService_Lookups(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	env.createUser(t, "bob")

	got, err := env.users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = env.users.GetUserByUsername(ctx, "carol")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = env.users.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, services.ErrNotFound)

	all, err := env.users.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].Username)
}

func TestUserService_UpdateUser_Whitelist(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	_, err := env.users.UpdateUser(ctx, alice.ID, entities.User{
		Username:       "mallory",
		Email:          "alice@example.com",
		PasswordHash:   "plain",
		CurrentChapter: 4,
	})
	require.NoError(t, err)

	got, err := env.users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, 4, got.CurrentChapter)
	assert.Equal(t, alice.PasswordHash, got.PasswordHash)
}

func TestUserService_UpdateProgress(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	user, err := env.users.UpdateProgress(ctx, alice.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, user.CurrentChapter)

	_, err = env.users.UpdateProgress(ctx, alice.ID, -3)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = env.users.UpdateProgress(ctx, 999, 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserService_ChangeUsername(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	env.createUser(t, "bob")

	_, err := env.users.ChangeUsername(ctx, alice.ID, "bob")
	assert.ErrorIs(t, err, services.ErrConflict)

	same, err := env.users.ChangeUsername(ctx, alice.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", same.Username)

	renamed, err := env.users.ChangeUsername(ctx, alice.ID, "alicia")
	require.NoError(t, err)
	assert.Equal(t, "alicia", renamed.Username)

	_, err = env.users.Authenticate(ctx, "alicia", "correct-horse")
	assert.NoError(t, err)

	_, err = env.users.ChangeUsername(ctx, alice.ID, "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestUserService_ChangePassword(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	err := env.users.ChangePassword(ctx, alice.ID, "wrong-horse", "battery-staple")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	err = env.users.ChangePassword(ctx, alice.ID, "correct-horse", "tiny")
	assert.ErrorIs(t, err, services.ErrValidation)

	require.NoError(t, env.users.ChangePassword(ctx, alice.ID, "correct-horse", "battery-staple"))

	_, err = env.users.Authenticate(ctx, "alice", "correct-horse")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	_, err = env.users.Authenticate(ctx, "alice", "battery-staple")
	assert.NoError(t, err)
}

func TestUserService_DeleteUser_Cascades(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	chapter := setupChapter(t, env)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	question := env.createQuestion(t, chapter.WeekID, "Favourite scene?")

	for _, user := range []*entities.User{alice, bob} {
		_, err := env.comments.CreateComment(ctx, &entities.Comment{ChapterID: chapter.ID, UserID: user.ID, Content: "note"})
		require.NoError(t, err)
		_, err = env.answers.CreateAnswer(ctx, &entities.QuestionAnswer{QuestionID: question.ID, UserID: user.ID, Answer: "the end"})
		require.NoError(t, err)
	}

	require.NoError(t, env.users.DeleteUser(ctx, alice.ID))
	assert.Equal(t, int64(1), env.count(t, &entities.User{}))
	assert.Equal(t, int64(1), env.count(t, &entities.Comment{}))
	assert.Equal(t, int64(1), env.count(t, &entities.QuestionAnswer{}))

	assert.ErrorIs(t, env.users.DeleteUser(ctx, alice.ID), services.ErrNotFound)
}
