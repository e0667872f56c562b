package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/go-book-crud-gin/internal/model"
	"github.com/snnyvrz/go-book-crud-gin/internal/repository"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	ListFn       func(ctx context.Context) ([]model.Book, error)
	FindByISBNFn func(ctx context.Context, isbn string) (*model.Book, error)
	CreateFn     func(ctx context.Context, b *model.Book) error
	UpdateFn     func(ctx context.Context, isbn string, b *model.Book) (*model.Book, error)
	DeleteFn     func(ctx context.Context, isbn string) error
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return []model.Book{}, nil
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	if f.FindByISBNFn != nil {
		return f.FindByISBNFn(ctx, isbn)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Update(ctx context.Context, isbn string, b *model.Book) (*model.Book, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, isbn, b)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) Delete(ctx context.Context, isbn string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, isbn)
	}
	return repository.ErrBookNotFound
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupBookRouterWithRepo(bookRepo repository.BookRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(bookRepo, discardLogger())
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupBookRouterWithRepo(repository.NewGormBookRepository(db))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// errorEnvelope decodes the error body keeping message as raw JSON, since it
// may be a string or a list.
type errorEnvelope struct {
	Error struct {
		Message json.RawMessage `json:"message"`
		Status  int             `json:"status"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var resp errorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v, body=%s", err, w.Body.String())
	}
	return resp
}

func (e errorEnvelope) messages(t *testing.T) []string {
	t.Helper()

	var msgs []string
	if err := json.Unmarshal(e.Error.Message, &msgs); err != nil {
		t.Fatalf("expected message list, got %s", e.Error.Message)
	}
	return msgs
}

func (e errorEnvelope) message(t *testing.T) string {
	t.Helper()

	var msg string
	if err := json.Unmarshal(e.Error.Message, &msg); err != nil {
		t.Fatalf("expected message string, got %s", e.Error.Message)
	}
	return msg
}
