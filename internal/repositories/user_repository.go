package repositories

import "pustaka/internal/models"

// UserRepository defines the interface for user data access. Create
// hashes the password before storing it; lookups return (nil, nil) on a
// miss.
type UserRepository interface {
	Create(username, password string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetAll() ([]models.User, error)
	Delete(id uint) error
}
