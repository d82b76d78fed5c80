// Package database owns the storage handle: driver selection,
// schema migration and fixture seeding. The *gorm.DB it produces is
// created once in main and injected into every repository.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pustaka/internal/models"
)

// Connect opens a database connection for the configured driver.
// Supported drivers are "sqlite" (default, embedded) and "postgres".
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema for all models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Author{},
		&models.Genre{},
		&models.Book{},
		&models.User{},
		&models.Location{},
		&models.Event{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

// Seed inserts the library fixture rows. It is idempotent: rows are
// matched by primary key and only created when missing.
func Seed(db *gorm.DB) error {
	authors := []models.Author{
		{ID: 1, Name: "J.K. Rowling", Birthdate: "1965-07-31"},
		{ID: 2, Name: "George R.R. Martin", Birthdate: "1948-09-20"},
		{ID: 3, Name: "J.R.R. Tolkien", Birthdate: "1892-09-03"},
	}
	for i := range authors {
		if err := db.FirstOrCreate(&authors[i], models.Author{ID: authors[i].ID}).Error; err != nil {
			return fmt.Errorf("failed to seed author %s: %w", authors[i].Name, err)
		}
	}

	genres := []models.Genre{
		{ID: 1, Name: "Fantasy"},
		{ID: 2, Name: "Science Fiction"},
		{ID: 3, Name: "Mystery"},
		{ID: 4, Name: "Non-Fiction"},
	}
	for i := range genres {
		if err := db.FirstOrCreate(&genres[i], models.Genre{ID: genres[i].ID}).Error; err != nil {
			return fmt.Errorf("failed to seed genre %s: %w", genres[i].Name, err)
		}
	}

	ref := func(id uint) *uint { return &id }
	books := []models.Book{
		{ISBN: 1, Title: "Harry Potter and the Philosopher's Stone", AuthorID: ref(1), GenreID: ref(1), PublishedYear: 1997},
		{ISBN: 2, Title: "Game of Thrones", AuthorID: ref(2), GenreID: ref(1), PublishedYear: 1996},
		{ISBN: 3, Title: "The Hobbit", AuthorID: ref(3), GenreID: ref(1), PublishedYear: 1937},
		{ISBN: 4, Title: "Dune", AuthorID: ref(2), GenreID: ref(2), PublishedYear: 1965},
	}
	for i := range books {
		if err := db.FirstOrCreate(&books[i], models.Book{ISBN: books[i].ISBN}).Error; err != nil {
			return fmt.Errorf("failed to seed book %s: %w", books[i].Title, err)
		}
	}

	log.Println("Database seeded with library fixtures")
	return nil
}
