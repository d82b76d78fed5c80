package services

import (
	"encoding/json"
	"log"

	"pustaka/internal/apperrors"
	"pustaka/internal/models"
	"pustaka/internal/repositories"
)

// BookService handles business logic related to books: duplicate
// prevention on creation and domain-event publication on writes.
type BookService struct {
	repo      repositories.BookRepository
	publisher EventPublisher
}

// NewBookService creates a new BookService. publisher may be nil, in
// which case no events are published.
func NewBookService(repo repositories.BookRepository, publisher EventPublisher) *BookService {
	return &BookService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllBooks retrieves all books with references resolved.
func (s *BookService) GetAllBooks() ([]models.BookDetail, error) {
	return s.repo.GetAll()
}

// GetBookByISBN retrieves a single book by its ISBN.
func (s *BookService) GetBookByISBN(isbn uint) (*models.BookDetail, error) {
	return s.repo.GetByID(isbn)
}

// CreateBook creates a new book. A book matching an existing one by
// title, author, genre and year is rejected as a conflict before the
// repository runs its reference checks.
func (s *BookService) CreateBook(input models.BookInput) (*models.BookDetail, error) {
	exists, err := s.repo.ExistsMatching(input.Title, input.AuthorID, input.GenreID, input.PublishedYear)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("book %q is already catalogued", input.Title)
	}

	book, err := s.repo.Create(input)
	if err != nil {
		return nil, err
	}

	s.publish("book.created", map[string]interface{}{
		"isbn":  book.ISBN,
		"title": book.Title,
	})
	return book, nil
}

// UpdateBook applies a partial update to an existing book.
func (s *BookService) UpdateBook(isbn uint, patch models.BookPatch) (*models.BookDetail, error) {
	return s.repo.Update(isbn, patch)
}

// DeleteBook deletes a book by its ISBN.
func (s *BookService) DeleteBook(isbn uint) error {
	if err := s.repo.Delete(isbn); err != nil {
		return err
	}
	s.publish("book.deleted", map[string]interface{}{
		"isbn": isbn,
	})
	return nil
}

// publish sends a domain event through the configured publisher. A
// publish failure never fails the request that caused it.
func (s *BookService) publish(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
