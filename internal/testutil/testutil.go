package testutil

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/snnyvrz/go-book-crud-gin/internal/db"
	"github.com/snnyvrz/go-book-crud-gin/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB returns a migrated in-memory sqlite database private to the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := db.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close(gdb)
	})

	return gdb
}

// NewUnmigratedTestDB returns an in-memory database without the books table,
// so every query against it fails.
func NewUnmigratedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := db.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close(gdb)
	})

	return gdb
}

func FakeBook() model.Book {
	info := gofakeit.Book()

	return model.Book{
		ISBN:      gofakeit.Numerify("978##########"),
		AmazonURL: "https://amazon.com/dp/" + gofakeit.Numerify("##########"),
		Author:    info.Author,
		Language:  gofakeit.Language(),
		Pages:     gofakeit.Number(0, 2000),
		Publisher: gofakeit.Company(),
		Title:     info.Title,
		Year:      gofakeit.Number(1450, 2030),
	}
}

// Payload renders b the way a client would send it.
func Payload(b model.Book) map[string]any {
	return map[string]any{
		"isbn":       b.ISBN,
		"amazon_url": b.AmazonURL,
		"author":     b.Author,
		"language":   b.Language,
		"pages":      b.Pages,
		"publisher":  b.Publisher,
		"title":      b.Title,
		"year":       b.Year,
	}
}

func SeedBook(t *testing.T, gdb *gorm.DB, book model.Book) model.Book {
	t.Helper()

	if err := gdb.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", book.ISBN, err)
	}

	return book
}
