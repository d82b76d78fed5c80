package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pustaka/internal/models"
	"pustaka/internal/services"
)

// GenreHandler handles HTTP requests for genres.
type GenreHandler struct {
	service  *services.GenreService
	validate *validator.Validate
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(service *services.GenreService) *GenreHandler {
	return &GenreHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the genre routes with the Fiber app.
func (h *GenreHandler) RegisterRoutes(router fiber.Router) {
	genreRoutes := router.Group("/genres")
	genreRoutes.Get("/", h.HandleGetGenres)
	genreRoutes.Get("/:id", h.HandleGetGenreByID)
	genreRoutes.Post("/", h.HandleCreateGenre)
	genreRoutes.Put("/:id", h.HandleUpdateGenre)
	genreRoutes.Delete("/:id", h.HandleDeleteGenre)
}

// HandleGetGenres retrieves all genres.
func (h *GenreHandler) HandleGetGenres(c *fiber.Ctx) error {
	genres, err := h.service.GetAllGenres()
	if err != nil {
		log.Printf("Error getting all genres: %v", err)
		return respondError(c, err)
	}
	return c.JSON(genres)
}

// HandleGetGenreByID retrieves a single genre by its ID.
func (h *GenreHandler) HandleGetGenreByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	genre, err := h.service.GetGenreByID(id)
	if err != nil {
		log.Printf("Error getting genre by ID %d: %v", id, err)
		return respondError(c, err)
	}
	if genre == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("genre with id %d not found", id),
		})
	}
	return c.JSON(genre)
}

// HandleCreateGenre creates a new genre. A duplicate name (compared
// case-insensitively) is reported as a conflict without touching the
// existing row.
func (h *GenreHandler) HandleCreateGenre(c *fiber.Ctx) error {
	var genre models.Genre
	if err := c.BodyParser(&genre); err != nil {
		log.Printf("Error parsing genre request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(genre); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.CreateGenre(&genre)
	if err != nil {
		log.Printf("Error creating genre: %v", err)
		return respondError(c, err)
	}
	if created == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("genre %q already exists", genre.Name),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateGenre applies a partial update to an existing genre.
func (h *GenreHandler) HandleUpdateGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var patch models.GenrePatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing genre patch body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.service.UpdateGenre(id, patch)
	if err != nil {
		log.Printf("Error updating genre %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteGenre deletes a genre, nulling the genre reference on any
// books that pointed at it.
func (h *GenreHandler) HandleDeleteGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteGenre(id); err != nil {
		log.Printf("Error deleting genre %d: %v", id, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Genre %d deleted successfully", id),
	})
}
