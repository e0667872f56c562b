package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snnyvrz/go-book-crud-gin/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrBookConflict = errors.New("book already exists")
)

const pgUniqueViolation = "23505"

// BookRepository owns the persistent representation of books.
//
// Create does not check for an existing row first; a duplicate isbn is
// rejected by the primary key and reported as ErrBookConflict. Every method
// is a single-statement, single-row operation.
type BookRepository interface {
	List(ctx context.Context) ([]model.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, isbn string, book *model.Book) (*model.Book, error)
	Delete(ctx context.Context, isbn string) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.WithContext(ctx).
		Order("title").
		Order("isbn").
		Find(&books).Error; err != nil {

		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Where("isbn = ?", isbn).
		Take(&book).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrBookConflict
		}
		return err
	}
	return nil
}

func (r *GormBookRepository) Update(ctx context.Context, isbn string, book *model.Book) (*model.Book, error) {
	var updated model.Book
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("isbn = ?", isbn).
		Updates(map[string]any{
			"amazon_url": book.AmazonURL,
			"author":     book.Author,
			"language":   book.Language,
			"pages":      book.Pages,
			"publisher":  book.Publisher,
			"title":      book.Title,
			"year":       book.Year,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBookNotFound
	}
	return &updated, nil
}

func (r *GormBookRepository) Delete(ctx context.Context, isbn string) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "isbn = ?", isbn)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
