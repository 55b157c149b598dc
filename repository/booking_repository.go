package repository

import (
	"context"
	"strconv"
	"time"

	"globetrek/models"
	"globetrek/storage"
)

// BookingRepository - CRUD по коллекции бронирований
type BookingRepository struct {
	store storage.Store
}

func NewBookingRepository(store storage.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) List(ctx context.Context) []models.Booking {
	return storage.ReadCollection[models.Booking](ctx, r.store, storage.KeyBookings)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, bool) {
	for _, b := range r.List(ctx) {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// Create присваивает строковый id по текущему времени (мс) и статус Confirmed,
// если статус не задан. Защиты от двойного сабмита нет.
func (r *BookingRepository) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	booking.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	if booking.Status == "" {
		booking.Status = models.BookingStatusConfirmed
	}
	bookings := r.List(ctx)
	bookings = append(bookings, booking)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyBookings, bookings); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking models.Booking) (bool, error) {
	bookings := r.List(ctx)
	found := false
	for i, b := range bookings {
		if b.ID == booking.ID {
			bookings[i] = booking
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}
	return true, storage.WriteCollection(ctx, r.store, storage.KeyBookings, bookings)
}

// UpdateStatus меняет только поле status. Таблицы переходов нет:
// любой статус допустим из любого, проверяется лишь принадлежность набору.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id, status string) (models.Booking, bool, error) {
	bookings := r.List(ctx)
	for i, b := range bookings {
		if b.ID == id {
			bookings[i].Status = status
			if err := storage.WriteCollection(ctx, r.store, storage.KeyBookings, bookings); err != nil {
				return models.Booking{}, false, err
			}
			return bookings[i], true, nil
		}
	}
	return models.Booking{}, false, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	bookings := r.List(ctx)
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	if len(filtered) == len(bookings) {
		return false, nil
	}
	return true, storage.WriteCollection(ctx, r.store, storage.KeyBookings, filtered)
}
