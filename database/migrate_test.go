package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"globetrek/models"
	"globetrek/storage"
)

// Записи старой формы дозаполняются значениями по умолчанию,
// версия схемы поднимается
func TestUpgradeDestinationsBackfill(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	old := []models.Destination{{ID: 1, Name: "Maldives", Price: "Rs. 35,000"}}
	assert.NoError(t, storage.WriteCollection(ctx, store, storage.KeyDestinations, old))

	assert.NoError(t, UpgradeDestinations(ctx, store))

	destinations := storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	assert.Len(t, destinations, 1)
	assert.Equal(t, []string{"Arrival and welcome", "Guided tour", "Free time", "Optional activities", "Departure"}, destinations[0].ItineraryHighlights)
	assert.Equal(t, []string{"Flights", "Accommodation", "Breakfast", "Transfers", "Insurance"}, destinations[0].PackageIncludes)
	assert.Equal(t, "Luxury Resort & Spa", destinations[0].Accommodation.Hotel)

	raw, ok, err := store.Get(ctx, storage.KeySchemaVersion)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", raw)
}

// Заполненные поля миграция не трогает
func TestUpgradeDestinationsKeepsFilledFields(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	filled := []models.Destination{{
		ID:                  1,
		Name:                "Paris",
		ItineraryHighlights: []string{"Eiffel Tower visit"},
		PackageIncludes:     []string{"Flights"},
		Accommodation:       models.Accommodation{Hotel: "Le Grand"},
	}}
	assert.NoError(t, storage.WriteCollection(ctx, store, storage.KeyDestinations, filled))

	assert.NoError(t, UpgradeDestinations(ctx, store))

	destinations := storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	assert.Equal(t, []string{"Eiffel Tower visit"}, destinations[0].ItineraryHighlights)
	assert.Equal(t, "Le Grand", destinations[0].Accommodation.Hotel)
}

// Актуальная версия схемы - no-op
func TestUpgradeDestinationsAlreadyCurrent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Set(ctx, storage.KeySchemaVersion, "2"))

	old := []models.Destination{{ID: 1, Name: "Bali"}}
	assert.NoError(t, storage.WriteCollection(ctx, store, storage.KeyDestinations, old))

	assert.NoError(t, UpgradeDestinations(ctx, store))

	destinations := storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	assert.Empty(t, destinations[0].ItineraryHighlights)
}
