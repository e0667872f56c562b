package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/go-book-crud-gin/internal/middleware"
	"github.com/snnyvrz/go-book-crud-gin/internal/repository"
	"github.com/snnyvrz/go-book-crud-gin/internal/validation"
)

const internalErrorMessage = "internal server error"

func writeError(c *gin.Context, status int, message any) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Message: message,
			Status:  status,
		},
	})
}

// respondError maps err onto the error envelope. Anything it does not
// recognise is logged and reported as a 500 without detail.
func (h *BookHandler) respondError(c *gin.Context, op, isbn string, err error) {
	var verr *validation.ValidationError
	var ierr *validation.ImmutableFieldError

	switch {
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, verr.Violations)
	case errors.As(err, &ierr):
		writeError(c, http.StatusBadRequest, ierr.Error())
	case errors.Is(err, repository.ErrBookNotFound):
		writeError(c, http.StatusNotFound, fmt.Sprintf("There is no book with an isbn '%s'", isbn))
	case errors.Is(err, repository.ErrBookConflict):
		writeError(c, http.StatusConflict, fmt.Sprintf("A book with isbn '%s' already exists", isbn))
	default:
		h.logger.ErrorContext(c.Request.Context(), "book operation failed",
			"op", op,
			"isbn", isbn,
			"request_id", middleware.RequestIDFrom(c),
			"error", err,
		)
		writeError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}
