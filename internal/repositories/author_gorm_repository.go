package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pustaka/internal/apperrors"
	"pustaka/internal/models"
)

const (
	storedDateLayout  = "2006-01-02"
	displayDateLayout = "02 January 2006"
)

// formatBirthdate converts a stored ISO date into the long display form
// ("1965-07-31" -> "31 July 1965"). Values that do not parse are
// returned untouched.
func formatBirthdate(stored string) string {
	t, err := time.Parse(storedDateLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format(displayDateLayout)
}

// validateBirthdate checks that a birthdate is a real calendar date in
// YYYY-MM-DD form.
func validateBirthdate(birthdate string) error {
	if _, err := time.Parse(storedDateLayout, birthdate); err != nil {
		return apperrors.NewValidation("Invalid birthdate format. Expected format: YYYY-MM-DD")
	}
	return nil
}

// GORMAuthorRepository is a GORM implementation of AuthorRepository.
type GORMAuthorRepository struct {
	db *gorm.DB
}

// NewGORMAuthorRepository creates a new instance of GORMAuthorRepository.
func NewGORMAuthorRepository(db *gorm.DB) *GORMAuthorRepository {
	return &GORMAuthorRepository{
		db: db,
	}
}

// GetAll retrieves all authors, birthdates in display form.
func (r *GORMAuthorRepository) GetAll() ([]models.Author, error) {
	var authors []models.Author
	if err := r.db.Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all authors: %w", err)
	}
	for i := range authors {
		authors[i].Birthdate = formatBirthdate(authors[i].Birthdate)
	}
	return authors, nil
}

// GetByID retrieves a single author, birthdate in display form.
// Returns (nil, nil) when no author matches.
func (r *GORMAuthorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	if err := r.db.First(&author, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by ID %d: %w", id, err)
	}
	author.Birthdate = formatBirthdate(author.Birthdate)
	return &author, nil
}

// Create validates the birthdate, inserts the author and returns the
// freshly reloaded row. An invalid birthdate performs no write.
func (r *GORMAuthorRepository) Create(author *models.Author) (*models.Author, error) {
	if err := validateBirthdate(author.Birthdate); err != nil {
		return nil, err
	}
	if err := r.db.Create(author).Error; err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return r.GetByID(author.ID)
}

// Update applies the present patch fields to an existing author. The
// existence check runs before any mutation; a changed birthdate is
// re-validated with the creation rules. An empty patch is a no-op
// read-back.
func (r *GORMAuthorRepository) Update(id uint, patch models.AuthorPatch) (*models.Author, error) {
	var existing models.Author
	if err := r.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "author", ID: id}
		}
		return nil, fmt.Errorf("failed to load author %d for update: %w", id, err)
	}

	if patch.Birthdate != nil && *patch.Birthdate != "" {
		if err := validateBirthdate(*patch.Birthdate); err != nil {
			return nil, err
		}
	}

	updates := patch.Updates()
	if len(updates) > 0 {
		if err := r.db.Model(&models.Author{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update author %d: %w", id, err)
		}
	}
	return r.GetByID(id)
}

// Delete removes an author after nulling the author reference on every
// dependent book. Both writes run in one transaction so a failure
// between them cannot leave the cascade half applied.
func (r *GORMAuthorRepository) Delete(id uint) error {
	var existing models.Author
	if err := r.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Resource: "author", ID: id}
		}
		return fmt.Errorf("failed to load author %d for deletion: %w", id, err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Book{}).Where("author_id = ?", id).Update("author_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach books from author %d: %w", id, err)
		}
		if err := tx.Delete(&models.Author{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete author %d: %w", id, err)
		}
		return nil
	})
	return err
}
