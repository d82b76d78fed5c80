package repositories

import "pustaka/internal/models"

// AuthorRepository defines the interface for author data access.
// GetByID returns (nil, nil) when no author matches: absence is a soft
// signal, not an error.
type AuthorRepository interface {
	GetAll() ([]models.Author, error)
	GetByID(id uint) (*models.Author, error)
	Create(author *models.Author) (*models.Author, error)
	Update(id uint, patch models.AuthorPatch) (*models.Author, error)
	Delete(id uint) error
}
