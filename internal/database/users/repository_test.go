package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/database/dbtest"
	"github.com/bookclub/backend/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	db := dbtest.New(t)
	return NewRepository(db.DB), db.DB
}

func TestRepository_CreateUser(t *testing.T) {
	repo, _ := setupTestDB(t)

	user := &entities.User{Username: "testuser", Email: "test@example.com", PasswordHash: "hash"}
	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "testuser", user.Username)
}

func TestRepository_CreateUser_DuplicateUsername(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &entities.User{Username: "alice"}))
	err := repo.CreateUser(ctx, &entities.User{Username: "alice"})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_GetUserByID(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	created := &entities.User{Username: "testuser"}
	require.NoError(t, repo.CreateUser(ctx, created))

	user, err := repo.GetUserByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetUserByID(context.Background(), 999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetUserByUsername(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	created := &entities.User{Username: "testuser"}
	require.NoError(t, repo.CreateUser(ctx, created))

	user, err := repo.GetUserByUsername(ctx, "testuser")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRepository_GetUserByUsername_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetUserByUsername(context.Background(), "nonexistent")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_UsernameExists(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &entities.User{Username: "bob"}))

	exists, err := repo.UsernameExists(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_GetAllUsers(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	users, err := repo.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, repo.CreateUser(ctx, &entities.User{Username: "user1"}))
	require.NoError(t, repo.CreateUser(ctx, &entities.User{Username: "user2"}))

	users, err = repo.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "user1", users[0].Username)
}

func TestRepository_DeleteUser_CascadesToCommentsAndAnswers(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()

	user := &entities.User{Username: "leaving"}
	require.NoError(t, repo.CreateUser(ctx, user))
	book := &entities.Book{Title: "Persuasion"}
	require.NoError(t, db.Create(book).Error)
	week := &entities.Week{BookID: book.ID, WeekNumber: 1}
	require.NoError(t, db.Create(week).Error)
	chapter := &entities.Chapter{WeekID: week.ID, ChapterNumber: 1}
	require.NoError(t, db.Create(chapter).Error)
	comment := &entities.Comment{ChapterID: chapter.ID, UserID: user.ID, Content: "hi"}
	require.NoError(t, db.Create(comment).Error)
	question := &entities.WeeklyQuestion{WeekID: week.ID, Question: "Thoughts?"}
	require.NoError(t, db.Create(question).Error)
	answer := &entities.QuestionAnswer{QuestionID: question.ID, UserID: user.ID, Answer: "Many"}
	require.NoError(t, db.Create(answer).Error)

	require.NoError(t, repo.DeleteUser(ctx, user.ID))

	exists, err := repo.UserExists(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.ErrorIs(t, db.First(&entities.Comment{}, comment.ID).Error, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, db.First(&entities.QuestionAnswer{}, answer.ID).Error, gorm.ErrRecordNotFound)
	require.NoError(t, db.First(&entities.WeeklyQuestion{}, question.ID).Error)
}
