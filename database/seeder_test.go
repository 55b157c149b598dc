package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"globetrek/models"
	"globetrek/storage"
)

// Пустое хранилище сидируется двенадцатью направлениями и они сохраняются
func TestSeedDestinationsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	assert.NoError(t, SeedDestinations(ctx, store))

	destinations := storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	assert.Len(t, destinations, 12)
	assert.Equal(t, "Maldives", destinations[0].Name)
	assert.Equal(t, "Sydney", destinations[11].Name)

	// Повторный запуск не дублирует каталог
	assert.NoError(t, SeedDestinations(ctx, store))
	destinations = storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	assert.Len(t, destinations, 12)
}

// Непустая коллекция не перезаписывается, включая правки пользователя
func TestSeedDestinationsKeepsExisting(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	existing := []models.Destination{{ID: 1, Name: "Custom Place"}}
	assert.NoError(t, storage.WriteCollection(ctx, store, storage.KeyDestinations, existing))

	assert.NoError(t, SeedDestinations(ctx, store))

	destinations := storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	assert.Len(t, destinations, 1)
	assert.Equal(t, "Custom Place", destinations[0].Name)
}

// У каждого сидированного направления заполнены карточка и детали
func TestDefaultDestinationsComplete(t *testing.T) {
	for _, d := range DefaultDestinations() {
		assert.NotZero(t, d.ID)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Price)
		assert.NotZero(t, d.PriceNumeric)
		assert.NotZero(t, d.Rating)
		assert.NotEmpty(t, d.ItineraryHighlights)
		assert.NotEmpty(t, d.PackageIncludes)
		assert.NotEmpty(t, d.Accommodation.Hotel)
	}
}
