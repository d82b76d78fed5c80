package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pustaka/internal/models"
	"pustaka/internal/services"
)

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	service  *services.BookService
	validate *validator.Validate
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service *services.BookService) *BookHandler {
	return &BookHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the book routes with the Fiber app.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleGetBooks)
	bookRoutes.Get("/:isbn", h.HandleGetBookByISBN)
	bookRoutes.Post("/", h.HandleCreateBook)
	bookRoutes.Put("/:isbn", h.HandleUpdateBook)
	bookRoutes.Delete("/:isbn", h.HandleDeleteBook)
}

// HandleGetBooks retrieves all books with author and genre names
// resolved.
func (h *BookHandler) HandleGetBooks(c *fiber.Ctx) error {
	books, err := h.service.GetAllBooks()
	if err != nil {
		log.Printf("Error getting all books: %v", err)
		return respondError(c, err)
	}
	return c.JSON(books)
}

// HandleGetBookByISBN retrieves a single book by its ISBN.
func (h *BookHandler) HandleGetBookByISBN(c *fiber.Ctx) error {
	isbn, err := parseID(c, "isbn")
	if err != nil {
		return respondError(c, err)
	}

	book, err := h.service.GetBookByISBN(isbn)
	if err != nil {
		log.Printf("Error getting book by ISBN %d: %v", isbn, err)
		return respondError(c, err)
	}
	if book == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("book with id %d not found", isbn),
		})
	}
	return c.JSON(book)
}

// HandleCreateBook creates a new book. The referenced author and genre
// must exist; a book matching an existing one by title, author, genre
// and year is rejected as a conflict.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var input models.BookInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing book request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.CreateBook(input)
	if err != nil {
		log.Printf("Error creating book: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateBook applies a partial update to an existing book.
func (h *BookHandler) HandleUpdateBook(c *fiber.Ctx) error {
	isbn, err := parseID(c, "isbn")
	if err != nil {
		return respondError(c, err)
	}

	var patch models.BookPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing book patch body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.service.UpdateBook(isbn, patch)
	if err != nil {
		log.Printf("Error updating book %d: %v", isbn, err)
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteBook deletes a book by its ISBN.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	isbn, err := parseID(c, "isbn")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteBook(isbn); err != nil {
		log.Printf("Error deleting book %d: %v", isbn, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Book %d deleted successfully", isbn),
	})
}
