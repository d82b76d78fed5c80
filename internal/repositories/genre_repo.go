package repositories

import "pustaka/internal/models"

// GenreRepository defines the interface for genre data access.
// GetByID returns (nil, nil) on a miss; Create returns (nil, nil) when
// a case-insensitive duplicate name already exists.
type GenreRepository interface {
	GetAll() ([]models.Genre, error)
	GetByID(id uint) (*models.Genre, error)
	Create(genre *models.Genre) (*models.Genre, error)
	Update(id uint, patch models.GenrePatch) (*models.Genre, error)
	Delete(id uint) error
}
