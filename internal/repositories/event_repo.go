package repositories

import "pustaka/internal/models"

// EventRepository defines the interface for the events and locations
// data access. Event reads resolve the location reference to its name.
type EventRepository interface {
	CreateLocation(location *models.Location) (*models.Location, error)
	GetAllLocations() ([]models.Location, error)
	CreateEvent(input models.EventInput) (*models.Event, error)
	GetAllEvents() ([]models.EventDetail, error)
}
