package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pustaka/internal/models"
	"pustaka/internal/services"
)

// MockEventRepository is a mock implementation of repositories.EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) CreateLocation(location *models.Location) (*models.Location, error) {
	args := m.Called(location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockEventRepository) GetAllLocations() ([]models.Location, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockEventRepository) CreateEvent(input models.EventInput) (*models.Event, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) GetAllEvents() ([]models.EventDetail, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EventDetail), args.Error(1)
}

func TestEventService_AddEventPublishes(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockPub := new(MockPublisher)
	eventService := services.NewEventService(mockRepo, mockPub)

	locationID := uint(1)
	input := models.EventInput{Title: "Reading Night", Date: "2026-10-15", LocationID: locationID}
	event := &models.Event{ID: 7, Title: "Reading Night", Date: "2026-10-15", LocationID: &locationID}

	mockRepo.On("CreateEvent", input).Return(event, nil).Once()
	mockPub.On("Publish", "event.created", mock.Anything).Return(nil).Once()

	created, err := eventService.AddEvent(input)
	assert.NoError(t, err)
	assert.Equal(t, event, created)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestEventService_GetEventsNormalizesMissingLocation(t *testing.T) {
	mockRepo := new(MockEventRepository)
	eventService := services.NewEventService(mockRepo, nil)

	name := "Town Hall"
	empty := ""
	mockRepo.On("GetAllEvents").Return([]models.EventDetail{
		{ID: 1, Title: "With Venue", Date: "2026-01-01", Location: &name},
		{ID: 2, Title: "Without Venue", Date: "2026-02-01", Location: &empty},
	}, nil).Once()

	events, err := eventService.GetEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, &name, events[0].Location)
	assert.Nil(t, events[1].Location)
	mockRepo.AssertExpectations(t)
}
