package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pustaka/internal/apperrors"
	"pustaka/internal/models"
)

// GORMGenreRepository is a GORM implementation of GenreRepository.
type GORMGenreRepository struct {
	db *gorm.DB
}

// NewGORMGenreRepository creates a new instance of GORMGenreRepository.
func NewGORMGenreRepository(db *gorm.DB) *GORMGenreRepository {
	return &GORMGenreRepository{
		db: db,
	}
}

// GetAll retrieves all genres in storage order.
func (r *GORMGenreRepository) GetAll() ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to get all genres: %w", err)
	}
	return genres, nil
}

// GetByID retrieves a single genre. Returns (nil, nil) when no genre
// matches.
func (r *GORMGenreRepository) GetByID(id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.First(&genre, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get genre by ID %d: %w", id, err)
	}
	return &genre, nil
}

// Create inserts a genre unless a case-insensitive duplicate name
// already exists, in which case it returns (nil, nil) and performs no
// write.
func (r *GORMGenreRepository) Create(genre *models.Genre) (*models.Genre, error) {
	var count int64
	normalized := strings.ToLower(strings.TrimSpace(genre.Name))
	if err := r.db.Model(&models.Genre{}).Where("LOWER(name) = ?", normalized).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check genre name %q: %w", genre.Name, err)
	}
	if count > 0 {
		return nil, nil
	}

	if err := r.db.Create(genre).Error; err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return r.GetByID(genre.ID)
}

// Update applies the present patch fields to an existing genre.
// Name uniqueness is deliberately not re-checked here: only creation
// guards against duplicates, matching the established API behavior.
func (r *GORMGenreRepository) Update(id uint, patch models.GenrePatch) (*models.Genre, error) {
	var existing models.Genre
	if err := r.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "genre", ID: id}
		}
		return nil, fmt.Errorf("failed to load genre %d for update: %w", id, err)
	}

	updates := patch.Updates()
	if len(updates) > 0 {
		if err := r.db.Model(&models.Genre{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update genre %d: %w", id, err)
		}
	}
	return r.GetByID(id)
}

// Delete removes a genre after nulling the genre reference on every
// dependent book, both inside one transaction.
func (r *GORMGenreRepository) Delete(id uint) error {
	var existing models.Genre
	if err := r.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Resource: "genre", ID: id}
		}
		return fmt.Errorf("failed to load genre %d for deletion: %w", id, err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Book{}).Where("genre_id = ?", id).Update("genre_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach books from genre %d: %w", id, err)
		}
		if err := tx.Delete(&models.Genre{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete genre %d: %w", id, err)
		}
		return nil
	})
	return err
}
