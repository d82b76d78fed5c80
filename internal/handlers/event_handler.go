package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pustaka/internal/models"
	"pustaka/internal/services"
)

// EventHandler handles HTTP requests for events and locations.
type EventHandler struct {
	service  *services.EventService
	validate *validator.Validate
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service *services.EventService) *EventHandler {
	return &EventHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the event and location routes with the
// Fiber app.
func (h *EventHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/locations", h.HandleGetLocations)
	router.Post("/locations", h.HandleCreateLocation)
	router.Get("/events", h.HandleGetEvents)
	router.Post("/events", h.HandleCreateEvent)
}

// HandleGetLocations retrieves all locations.
func (h *EventHandler) HandleGetLocations(c *fiber.Ctx) error {
	locations, err := h.service.GetLocations()
	if err != nil {
		log.Printf("Error getting locations: %v", err)
		return respondError(c, err)
	}
	return c.JSON(locations)
}

// HandleCreateLocation creates a new location.
func (h *EventHandler) HandleCreateLocation(c *fiber.Ctx) error {
	var location models.Location
	if err := c.BodyParser(&location); err != nil {
		log.Printf("Error parsing location request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(location); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.AddLocation(&location)
	if err != nil {
		log.Printf("Error creating location: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"locationId": created.ID,
	})
}

// HandleGetEvents retrieves all events with location names resolved.
func (h *EventHandler) HandleGetEvents(c *fiber.Ctx) error {
	events, err := h.service.GetEvents()
	if err != nil {
		log.Printf("Error getting events: %v", err)
		return respondError(c, err)
	}
	return c.JSON(events)
}

// HandleCreateEvent creates a new event tied to an existing location.
func (h *EventHandler) HandleCreateEvent(c *fiber.Ctx) error {
	var input models.EventInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing event request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.AddEvent(input)
	if err != nil {
		log.Printf("Error creating event: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"eventId": created.ID,
	})
}
