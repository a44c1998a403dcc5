package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclub/backend/internal/entities"
	"github.com/bookclub/backend/internal/services"
)

func TestWeekService_CreateWeek_UnknownBook(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.weeks.CreateWeek(context.Background(), &entities.Week{BookID: 42, WeekNumber: 1})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Zero(t, env.count(t, &entities.Week{}))
}

func TestWeekService_UpdateWeek_Whitelist(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	book := env.createBook(t, "Original", true)
	other := env.createBook(t, "Other", false)
	week := env.createWeek(t, book.ID, 1)

	start := entities.NewDate(2024, time.March, 4)
	end := entities.NewDate(2024, time.March, 10)
	updated, err := env.weeks.UpdateWeek(ctx, week.ID, entities.Week{
		ID:         999,
		BookID:     other.ID,
		WeekNumber: 3,
		Title:      "Renamed",
		StartDate:  &start,
		EndDate:    &end,
	})
	require.NoError(t, err)
	assert.Equal(t, week.ID, updated.ID)

	got, err := env.weeks.GetWeekByID(ctx, week.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, got.BookID)
	assert.Equal(t, 3, got.WeekNumber)
	assert.Equal(t, "Renamed", got.Title)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2024-03-04", got.StartDate.String())
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2024-03-10", got.EndDate.String())

	_, err = env.weeks.UpdateWeek(ctx, 999, entities.Week{Title: "Nope"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWeekService_GetChaptersForWeek(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	book := env.createBook(t, "Chapters", true)
	week := env.createWeek(t, book.ID, 1)

	for _, n := range []int{3, 1, 2} {
		env.createChapter(t, week.ID, n)
	}

	fromWeeks, err := env.weeks.GetChaptersForWeek(ctx, week.ID)
	require.NoError(t, err)
	fromChapters, err := env.chapters.GetChaptersByWeek(ctx, week.ID)
	require.NoError(t, err)

	for _, list := range [][]entities.Chapter{fromWeeks, fromChapters} {
		require.Len(t, list, 3)
		for i, chapter := range list {
			assert.Equal(t, i+1, chapter.ChapterNumber)
		}
	}

	_, err = env.weeks.GetChaptersForWeek(ctx, 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWeekService_GetWeeksByBook_UnknownBookIsEmpty(t *testing.T) {
	env := setupTestEnv(t)

	weeks, err := env.weeks.GetWeeksByBook(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, weeks)
}

func TestWeekService_DeleteWeek_Cascades(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	book := env.createBook(t, "Cascade", true)
	week := env.createWeek(t, book.ID, 1)
	keep := env.createWeek(t, book.ID, 2)
	user := env.createUser(t, "reader")

	chapter := env.createChapter(t, week.ID, 1)
	keptChapter := env.createChapter(t, keep.ID, 2)
	comment, err := env.comments.CreateComment(ctx, &entities.Comment{ChapterID: chapter.ID, UserID: user.ID, Content: "gone"})
	require.NoError(t, err)
	kept, err := env.comments.CreateComment(ctx, &entities.Comment{ChapterID: keptChapter.ID, UserID: user.ID, Content: "kept"})
	require.NoError(t, err)

	question := env.createQuestion(t, week.ID, "Why?")
	answer, err := env.answers.CreateAnswer(ctx, &entities.QuestionAnswer{QuestionID: question.ID, UserID: user.ID, Answer: "Because"})
	require.NoError(t, err)

	require.NoError(t, env.weeks.DeleteWeek(ctx, week.ID))

	assert.Equal(t, int64(1), env.count(t, &entities.Week{}))
	assert.Equal(t, int64(1), env.count(t, &entities.Chapter{}))
	assert.Equal(t, int64(1), env.count(t, &entities.Comment{}))
	assert.Zero(t, env.count(t, &entities.WeeklyQuestion{}))
	assert.Zero(t, env.count(t, &entities.QuestionAnswer{}))

	_, err = env.weeks.GetWeekByID(ctx, week.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.chapters.GetChapterByID(ctx, chapter.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.comments.GetCommentByID(ctx, comment.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.questions.GetQuestionByID(ctx, question.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.answers.GetAnswerByID(ctx, answer.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.questions.GetAnswersForQuestion(ctx, question.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = env.chapters.GetChapterByID(ctx, keptChapter.ID)
	assert.NoError(t, err)
	_, err = env.comments.GetCommentByID(ctx, kept.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, env.weeks.DeleteWeek(ctx, week.ID), services.ErrNotFound)
}
