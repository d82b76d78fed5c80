package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pustaka/internal/models"
	"pustaka/internal/services"
)

// AuthorHandler handles HTTP requests for authors.
type AuthorHandler struct {
	service  *services.AuthorService
	validate *validator.Validate
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(service *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the author routes with the Fiber app.
func (h *AuthorHandler) RegisterRoutes(router fiber.Router) {
	authorRoutes := router.Group("/authors")
	authorRoutes.Get("/", h.HandleGetAuthors)
	authorRoutes.Get("/:id", h.HandleGetAuthorByID)
	authorRoutes.Post("/", h.HandleCreateAuthor)
	authorRoutes.Put("/:id", h.HandleUpdateAuthor)
	authorRoutes.Delete("/:id", h.HandleDeleteAuthor)
}

// HandleGetAuthors retrieves all authors.
func (h *AuthorHandler) HandleGetAuthors(c *fiber.Ctx) error {
	authors, err := h.service.GetAllAuthors()
	if err != nil {
		log.Printf("Error getting all authors: %v", err)
		return respondError(c, err)
	}
	return c.JSON(authors)
}

// HandleGetAuthorByID retrieves a single author by its ID.
func (h *AuthorHandler) HandleGetAuthorByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	author, err := h.service.GetAuthorByID(id)
	if err != nil {
		log.Printf("Error getting author by ID %d: %v", id, err)
		return respondError(c, err)
	}
	if author == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("author with id %d not found", id),
		})
	}
	return c.JSON(author)
}

// HandleCreateAuthor creates a new author.
func (h *AuthorHandler) HandleCreateAuthor(c *fiber.Ctx) error {
	var author models.Author
	if err := c.BodyParser(&author); err != nil {
		log.Printf("Error parsing author request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(author); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.CreateAuthor(&author)
	if err != nil {
		log.Printf("Error creating author: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateAuthor applies a partial update to an existing author.
func (h *AuthorHandler) HandleUpdateAuthor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var patch models.AuthorPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing author patch body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.service.UpdateAuthor(id, patch)
	if err != nil {
		log.Printf("Error updating author %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteAuthor deletes an author, nulling the author reference on
// any books that pointed at it.
func (h *AuthorHandler) HandleDeleteAuthor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteAuthor(id); err != nil {
		log.Printf("Error deleting author %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Author %d deleted successfully", id),
	})
}
