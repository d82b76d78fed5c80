package services

import (
	"encoding/json"
	"log"

	"github.com/samber/lo"

	"pustaka/internal/models"
	"pustaka/internal/repositories"
)

// EventService handles business logic for the events and locations
// domain.
type EventService struct {
	repo      repositories.EventRepository
	publisher EventPublisher
}

// NewEventService creates a new EventService. publisher may be nil.
func NewEventService(repo repositories.EventRepository, publisher EventPublisher) *EventService {
	return &EventService{
		repo:      repo,
		publisher: publisher,
	}
}

// AddLocation creates a new location.
func (s *EventService) AddLocation(location *models.Location) (*models.Location, error) {
	return s.repo.CreateLocation(location)
}

// GetLocations retrieves all locations.
func (s *EventService) GetLocations() ([]models.Location, error) {
	return s.repo.GetAllLocations()
}

// AddEvent creates a new event and announces it on the broker.
func (s *EventService) AddEvent(input models.EventInput) (*models.Event, error) {
	event, err := s.repo.CreateEvent(input)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		body, err := json.Marshal(map[string]interface{}{
			"id":    event.ID,
			"title": event.Title,
			"date":  event.Date,
		})
		if err != nil {
			log.Printf("Failed to marshal event.created: %v", err)
		} else if err := s.publisher.Publish("event.created", body); err != nil {
			log.Printf("Warning: failed to publish event.created: %v", err)
		}
	}
	return event, nil
}

// GetEvents retrieves all events with location names resolved. Events
// whose location was never set keep a null location field.
func (s *EventService) GetEvents() ([]models.EventDetail, error) {
	events, err := s.repo.GetAllEvents()
	if err != nil {
		return nil, err
	}
	// Normalize: scanning can leave empty strings for missing joins on
	// some drivers, the API contract is null.
	return lo.Map(events, func(e models.EventDetail, _ int) models.EventDetail {
		if e.Location != nil && *e.Location == "" {
			e.Location = nil
		}
		return e
	}), nil
}
