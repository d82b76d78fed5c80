package services

import (
	"pustaka/internal/models"
	"pustaka/internal/repositories"
)

// GenreService handles business logic related to genres.
type GenreService struct {
	repo repositories.GenreRepository
}

// NewGenreService creates a new GenreService.
func NewGenreService(repo repositories.GenreRepository) *GenreService {
	return &GenreService{
		repo: repo,
	}
}

// GetAllGenres retrieves all genres.
func (s *GenreService) GetAllGenres() ([]models.Genre, error) {
	return s.repo.GetAll()
}

// GetGenreByID retrieves a single genre by its ID.
func (s *GenreService) GetGenreByID(id uint) (*models.Genre, error) {
	return s.repo.GetByID(id)
}

// CreateGenre creates a new genre. A case-insensitive duplicate name
// yields (nil, nil) rather than an error.
func (s *GenreService) CreateGenre(genre *models.Genre) (*models.Genre, error) {
	return s.repo.Create(genre)
}

// UpdateGenre applies a partial update to an existing genre.
func (s *GenreService) UpdateGenre(id uint, patch models.GenrePatch) (*models.Genre, error) {
	return s.repo.Update(id, patch)
}

// DeleteGenre deletes a genre, detaching any books that reference it.
func (s *GenreService) DeleteGenre(id uint) error {
	return s.repo.Delete(id)
}
