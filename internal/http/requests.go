package http

import "github.com/bookclub/backend/internal/entities"

// ref is the nested parent form sent by the web client, e.g. {"week": {"id": 3}}.
type ref struct {
	ID uint64 `json:"id"`
}

// pick returns the flat id when set and the nested one otherwise.
func pick(flat uint64, nested *ref) uint64 {
	if flat != 0 || nested == nil {
		return flat
	}
	return nested.ID
}

type bookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	Active      bool   `json:"active"`
}

func (r bookRequest) entity() *entities.Book {
	return &entities.Book{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		IsActive:    r.IsActive || r.Active,
	}
}

type weekRequest struct {
	BookID     uint64         `json:"bookId"`
	Book       *ref           `json:"book"`
	WeekNumber int            `json:"weekNumber"`
	Title      string         `json:"title"`
	StartDate  *entities.Date `json:"startDate"`
	EndDate    *entities.Date `json:"endDate"`
}

func (r weekRequest) entity() *entities.Week {
	return &entities.Week{
		BookID:     pick(r.BookID, r.Book),
		WeekNumber: r.WeekNumber,
		Title:      r.Title,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

type chapterRequest struct {
	WeekID        uint64 `json:"weekId"`
	Week          *ref   `json:"week"`
	ChapterNumber int    `json:"chapterNumber"`
	Title         string `json:"title"`
}

func (r chapterRequest) entity() *entities.Chapter {
	return &entities.Chapter{
		WeekID:        pick(r.WeekID, r.Week),
		ChapterNumber: r.ChapterNumber,
		Title:         r.Title,
	}
}

type commentRequest struct {
	ChapterID uint64 `json:"chapterId"`
	Chapter   *ref   `json:"chapter"`
	UserID    uint64 `json:"userId"`
	User      *ref   `json:"user"`
	Content   string `json:"content"`
}

func (r commentRequest) entity() *entities.Comment {
	return &entities.Comment{
		ChapterID: pick(r.ChapterID, r.Chapter),
		UserID:    pick(r.UserID, r.User),
		Content:   r.Content,
	}
}

type userRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	CurrentChapter int    `json:"currentChapter"`
}

func (r userRequest) entity() *entities.User {
	return &entities.User{
		Username:       r.Username,
		Email:          r.Email,
		CurrentChapter: r.CurrentChapter,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type questionRequest struct {
	WeekID   uint64 `json:"weekId"`
	Week     *ref   `json:"week"`
	Question string `json:"question"`
}

func (r questionRequest) entity() *entities.WeeklyQuestion {
	return &entities.WeeklyQuestion{
		WeekID:   pick(r.WeekID, r.Week),
		Question: r.Question,
	}
}

type answerRequest struct {
	QuestionID uint64 `json:"questionId"`
	Question   *ref   `json:"question"`
	UserID     uint64 `json:"userId"`
	User       *ref   `json:"user"`
	Answer     string `json:"answer"`
}

func (r answerRequest) entity() *entities.QuestionAnswer {
	return &entities.QuestionAnswer{
		QuestionID: pick(r.QuestionID, r.Question),
		UserID:     pick(r.UserID, r.User),
		Answer:     r.Answer,
	}
}
