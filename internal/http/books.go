package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BooksController struct {
	books BookService
}

func NewBooksController(books BookService) *BooksController {
	return &BooksController{books: books}
}

// GetCurrentBook returns the active book
// GET /api/books/current
func (bc *BooksController) GetCurrentBook(c *gin.Context) {
	book, err := bc.books.GetCurrentBook(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "get current book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// GetAllBooks lists every book
// GET /api/books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := bc.books.GetAllBooks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "get all books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.books.GetBookByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook creates a book. An active book replaces the current one.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req bookRequest
	if !bindJSON(c, &req) {
		return
	}

	book, err := bc.books.CreateBook(c.Request.Context(), req.entity())
	if err != nil {
		respondServiceError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// SetActiveBook makes a book the current one
// PUT /api/books/:id/activate
func (bc *BooksController) SetActiveBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.books.SetActiveBook(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "set active book")
		return
	}
	respondSuccess(c, "book activated")
}

// GetWeeks returns the weeks of a book
// GET /api/books/:id/weeks
func (bc *BooksController) GetWeeks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	weeks, err := bc.books.GetWeeksForBook(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get weeks for book")
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.books.DeleteBook(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}
	respondSuccess(c, "book deleted")
}
