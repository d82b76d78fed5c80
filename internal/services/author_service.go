package services

import (
	"pustaka/internal/models"
	"pustaka/internal/repositories"
)

// AuthorService handles business logic related to authors. All
// invariants live in the repository, so this layer is pure delegation.
type AuthorService struct {
	repo repositories.AuthorRepository
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(repo repositories.AuthorRepository) *AuthorService {
	return &AuthorService{
		repo: repo,
	}
}

// GetAllAuthors retrieves all authors.
func (s *AuthorService) GetAllAuthors() ([]models.Author, error) {
	return s.repo.GetAll()
}

// GetAuthorByID retrieves a single author by its ID.
func (s *AuthorService) GetAuthorByID(id uint) (*models.Author, error) {
	return s.repo.GetByID(id)
}

// CreateAuthor creates a new author.
func (s *AuthorService) CreateAuthor(author *models.Author) (*models.Author, error) {
	return s.repo.Create(author)
}

// UpdateAuthor applies a partial update to an existing author.
func (s *AuthorService) UpdateAuthor(id uint, patch models.AuthorPatch) (*models.Author, error) {
	return s.repo.Update(id, patch)
}

// DeleteAuthor deletes an author, detaching any books that reference it.
func (s *AuthorService) DeleteAuthor(id uint) error {
	return s.repo.Delete(id)
}
