package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/go-book-crud-gin/internal/repository"
	"github.com/snnyvrz/go-book-crud-gin/internal/validation"
)

type BookHandler struct {
	repo   repository.BookRepository
	logger *slog.Logger
}

func NewBookHandler(repo repository.BookRepository, logger *slog.Logger) *BookHandler {
	return &BookHandler{repo: repo, logger: logger}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:isbn", h.GetBook)
		books.POST("", h.CreateBook)
		books.PUT("/:isbn", h.UpdateBook)
		books.DELETE("/:isbn", h.DeleteBook)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books ordered by title
// @Tags         books
// @Produce      json
// @Success      200  {object}  ListBooksResponse
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "list", "", err)
		return
	}

	c.JSON(http.StatusOK, ListBooksResponse{Books: books})
}

// GetBook godoc
// @Summary      Get a book
// @Description  Get a single book by its ISBN
// @Tags         books
// @Produce      json
// @Param        isbn  path      string  true  "Book ISBN"
// @Success      200   {object}  BookResponse
// @Failure      404   {object}  ErrorResponse  "Book not found"
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /books/{isbn} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	isbn := c.Param("isbn")

	book, err := h.repo.FindByISBN(c.Request.Context(), isbn)
	if err != nil {
		h.respondError(c, "get", isbn, err)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Book: *book})
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a book; every field including the ISBN is required
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest    true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  ErrorResponse  "Validation error"
// @Failure      409      {object}  ErrorResponse  "ISBN already exists"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	payload, err := validation.DecodeObject(c.Request.Body)
	if err != nil {
		h.respondError(c, "create", "", err)
		return
	}

	book, err := validation.CreateBook(payload)
	if err != nil {
		h.respondError(c, "create", "", err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		h.respondError(c, "create", book.ISBN, err)
		return
	}

	c.JSON(http.StatusCreated, BookResponse{Book: book})
}

// UpdateBook godoc
// @Summary      Replace a book
// @Description  Replace every field of a book except its ISBN. An ISBN in the body must match the path.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        isbn     path      string         true  "Book ISBN"
// @Param        payload  body      BookRequest    true  "Replacement fields"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  ErrorResponse  "Validation error or ISBN change"
// @Failure      404      {object}  ErrorResponse  "Book not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /books/{isbn} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	isbn := c.Param("isbn")

	payload, err := validation.DecodeObject(c.Request.Body)
	if err != nil {
		h.respondError(c, "update", isbn, err)
		return
	}

	book, err := validation.UpdateBook(payload)
	if err != nil {
		h.respondError(c, "update", isbn, err)
		return
	}

	if err := validation.CheckISBNUnchanged(isbn, payload); err != nil {
		h.respondError(c, "update", isbn, err)
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), isbn, &book)
	if err != nil {
		h.respondError(c, "update", isbn, err)
		return
	}

	c.JSON(http.StatusOK, BookResponse{Book: *updated})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by its ISBN
// @Tags         books
// @Produce      json
// @Param        isbn  path      string  true  "Book ISBN"
// @Success      200   {object}  MessageResponse
// @Failure      404   {object}  ErrorResponse  "Book not found"
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /books/{isbn} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	isbn := c.Param("isbn")

	if err := h.repo.Delete(c.Request.Context(), isbn); err != nil {
		h.respondError(c, "delete", isbn, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book deleted"})
}
