package repositories

import "pustaka/internal/models"

// BookRepository defines the interface for book data access. Reads
// return the joined BookDetail view; GetByID returns (nil, nil) on a
// miss. Reference existence is validated here, application-side, so the
// check fires regardless of storage-engine foreign key configuration.
type BookRepository interface {
	GetAll() ([]models.BookDetail, error)
	GetByID(isbn uint) (*models.BookDetail, error)
	Create(input models.BookInput) (*models.BookDetail, error)
	Update(isbn uint, patch models.BookPatch) (*models.BookDetail, error)
	Delete(isbn uint) error
	ExistsMatching(title string, authorID, genreID uint, publishedYear int) (bool, error)
}
