package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pustaka/internal/apperrors"
	"pustaka/internal/models"
)

// GORMEventRepository is a GORM implementation of EventRepository.
type GORMEventRepository struct {
	db *gorm.DB
}

// NewGORMEventRepository creates a new instance of GORMEventRepository.
func NewGORMEventRepository(db *gorm.DB) *GORMEventRepository {
	return &GORMEventRepository{
		db: db,
	}
}

// CreateLocation inserts a new location.
func (r *GORMEventRepository) CreateLocation(location *models.Location) (*models.Location, error) {
	if err := r.db.Create(location).Error; err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

// GetAllLocations retrieves all locations in storage order.
func (r *GORMEventRepository) GetAllLocations() ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all locations: %w", err)
	}
	return locations, nil
}

// CreateEvent validates the location reference before inserting.
func (r *GORMEventRepository) CreateEvent(input models.EventInput) (*models.Event, error) {
	var count int64
	if err := r.db.Model(&models.Location{}).Where("id = ?", input.LocationID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check location reference %d: %w", input.LocationID, err)
	}
	if count == 0 {
		return nil, &apperrors.ReferenceNotFoundError{Field: "location", ID: input.LocationID}
	}

	event := models.Event{
		Title:      input.Title,
		Date:       input.Date,
		LocationID: &input.LocationID,
	}
	if err := r.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

// GetAllEvents retrieves all events with location names resolved.
func (r *GORMEventRepository) GetAllEvents() ([]models.EventDetail, error) {
	var events []models.EventDetail
	err := r.db.Model(&models.Event{}).
		Select("events.id, events.title, events.date, locations.name AS location").
		Joins("LEFT JOIN locations ON events.location_id = locations.id").
		Scan(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}
	return events, nil
}
