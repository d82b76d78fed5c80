package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pustaka/internal/apperrors"
	"pustaka/internal/models"
	"pustaka/internal/repositories"
)

func TestEventRepository_CreateEventChecksLocation(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMEventRepository(db)

	_, err := repo.CreateEvent(models.EventInput{Title: "Launch Party", Date: "2026-09-01", LocationID: 77})
	assert.True(t, apperrors.IsReferenceNotFound(err))

	location, err := repo.CreateLocation(&models.Location{
		Name: "Town Hall", Address: "1 Main St", City: "Springfield", Country: "US",
	})
	require.NoError(t, err)
	require.NotZero(t, location.ID)

	event, err := repo.CreateEvent(models.EventInput{Title: "Launch Party", Date: "2026-09-01", LocationID: location.ID})
	require.NoError(t, err)
	require.NotNil(t, event.LocationID)
	assert.Equal(t, location.ID, *event.LocationID)
}

func TestEventRepository_GetAllEventsResolvesLocation(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMEventRepository(db)

	location, err := repo.CreateLocation(&models.Location{
		Name: "Library Annex", Address: "2 Side St", City: "Springfield", Country: "US",
	})
	require.NoError(t, err)
	_, err = repo.CreateEvent(models.EventInput{Title: "Reading Night", Date: "2026-10-15", LocationID: location.ID})
	require.NoError(t, err)

	events, err := repo.GetAllEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Reading Night", events[0].Title)
	require.NotNil(t, events[0].Location)
	assert.Equal(t, "Library Annex", *events[0].Location)

	locations, err := repo.GetAllLocations()
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}
