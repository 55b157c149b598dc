package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"globetrek/models"
	"globetrek/storage"
)

// Create задает строковый id и статус Confirmed по умолчанию
func TestBookingCreateDefaults(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore())

	created, err := repo.Create(context.Background(), models.Booking{
		User:          "John Doe",
		DestinationID: 3,
		Date:          "2025-07-01",
		People:        2,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
}

// Статусы меняются в любом направлении, таблицы переходов нет
func TestBookingStatusAnyTransition(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(storage.NewMemoryStore())
	created, _ := repo.Create(ctx, models.Booking{User: "Jane", DestinationID: 1})

	transitions := []string{
		models.BookingStatusCanceled,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
	}
	for _, status := range transitions {
		updated, ok, err := repo.UpdateStatus(ctx, created.ID, status)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, status, updated.Status)
	}
}

// Неизвестный статус отсекается на уровне модели
func TestValidBookingStatus(t *testing.T) {
	assert.True(t, models.ValidBookingStatus(models.BookingStatusPending))
	assert.False(t, models.ValidBookingStatus("Shipped"))
	assert.False(t, models.ValidBookingStatus(""))
}

// UpdateStatus по несуществующему id возвращает false
func TestBookingStatusMissing(t *testing.T) {
	repo := NewBookingRepository(storage.NewMemoryStore())
	_, ok, err := repo.UpdateStatus(context.Background(), "12345", models.BookingStatusCanceled)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// Delete убирает ровно одно бронирование
func TestBookingDeleteExactlyOne(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewBookingRepository(store)

	// id строится от текущего времени, поэтому записи кладем напрямую
	seed := []models.Booking{
		{ID: "100", User: "A", DestinationID: 1},
		{ID: "200", User: "B", DestinationID: 2},
		{ID: "300", User: "C", DestinationID: 3},
	}
	assert.NoError(t, storage.WriteCollection(ctx, store, storage.KeyBookings, seed))

	ok, err := repo.Delete(ctx, "200")
	assert.NoError(t, err)
	assert.True(t, ok)

	rest := repo.List(ctx)
	assert.Len(t, rest, 2)
	assert.Equal(t, "100", rest[0].ID)
	assert.Equal(t, "300", rest[1].ID)
}
