package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pustaka/internal/apperrors"
	"pustaka/internal/models"
)

const bookDetailColumns = "books.isbn, books.title, authors.name AS author, genres.name AS genre, books.published_year"

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

func (r *GORMBookRepository) detailQuery() *gorm.DB {
	return r.db.Model(&models.Book{}).
		Select(bookDetailColumns).
		Joins("LEFT JOIN authors ON books.author_id = authors.id").
		Joins("LEFT JOIN genres ON books.genre_id = genres.id")
}

// GetAll retrieves all books with author and genre names resolved.
func (r *GORMBookRepository) GetAll() ([]models.BookDetail, error) {
	var books []models.BookDetail
	if err := r.detailQuery().Scan(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to get all books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book with author and genre names resolved.
// Returns (nil, nil) when no book matches.
func (r *GORMBookRepository) GetByID(isbn uint) (*models.BookDetail, error) {
	var book models.BookDetail
	err := r.detailQuery().Where("books.isbn = ?", isbn).Take(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by ISBN %d: %w", isbn, err)
	}
	return &book, nil
}

// referenceExists checks that a referenced row is present in the given
// table.
func (r *GORMBookRepository) referenceExists(table string, id uint) (bool, error) {
	var count int64
	if err := r.db.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s reference %d: %w", table, id, err)
	}
	return count > 0, nil
}

// Create validates both references before inserting; a missing author
// or genre performs no book insert.
func (r *GORMBookRepository) Create(input models.BookInput) (*models.BookDetail, error) {
	ok, err := r.referenceExists("authors", input.AuthorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &apperrors.ReferenceNotFoundError{Field: "author", ID: input.AuthorID}
	}

	ok, err = r.referenceExists("genres", input.GenreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &apperrors.ReferenceNotFoundError{Field: "genre", ID: input.GenreID}
	}

	book := models.Book{
		Title:         input.Title,
		AuthorID:      &input.AuthorID,
		GenreID:       &input.GenreID,
		PublishedYear: input.PublishedYear,
	}
	if err := r.db.Create(&book).Error; err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return r.GetByID(book.ISBN)
}

// Update applies the present patch fields to an existing book. Changed
// references are re-validated with the creation rules; the existence
// check runs before any mutation.
func (r *GORMBookRepository) Update(isbn uint, patch models.BookPatch) (*models.BookDetail, error) {
	var existing models.Book
	if err := r.db.First(&existing, "isbn = ?", isbn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "book", ID: isbn}
		}
		return nil, fmt.Errorf("failed to load book %d for update: %w", isbn, err)
	}

	if patch.AuthorID != nil && *patch.AuthorID != 0 {
		ok, err := r.referenceExists("authors", *patch.AuthorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &apperrors.ReferenceNotFoundError{Field: "author", ID: *patch.AuthorID}
		}
	}
	if patch.GenreID != nil && *patch.GenreID != 0 {
		ok, err := r.referenceExists("genres", *patch.GenreID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &apperrors.ReferenceNotFoundError{Field: "genre", ID: *patch.GenreID}
		}
	}

	updates := patch.Updates()
	if len(updates) > 0 {
		if err := r.db.Model(&models.Book{}).Where("isbn = ?", isbn).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update book %d: %w", isbn, err)
		}
	}
	return r.GetByID(isbn)
}

// Delete removes a book after an existence check. Books own nothing, so
// no cascade is needed.
func (r *GORMBookRepository) Delete(isbn uint) error {
	var existing models.Book
	if err := r.db.First(&existing, "isbn = ?", isbn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Resource: "book", ID: isbn}
		}
		return fmt.Errorf("failed to load book %d for deletion: %w", isbn, err)
	}
	if err := r.db.Delete(&models.Book{}, "isbn = ?", isbn).Error; err != nil {
		return fmt.Errorf("failed to delete book %d: %w", isbn, err)
	}
	return nil
}

// ExistsMatching reports whether a book with the same title, author,
// genre and year is already catalogued.
func (r *GORMBookRepository) ExistsMatching(title string, authorID, genreID uint, publishedYear int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Book{}).
		Where("title = ? AND author_id = ? AND genre_id = ? AND published_year = ?",
			title, authorID, genreID, publishedYear).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate book %q: %w", title, err)
	}
	return count > 0, nil
}
