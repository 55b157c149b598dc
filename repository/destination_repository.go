package repository

import (
	"context"

	"globetrek/models"
	"globetrek/storage"
)

// DestinationRepository - CRUD по коллекции направлений. Каждая мутация
// читает весь массив, меняет его в памяти и записывает обратно целиком
// (последняя запись побеждает, версий и блокировок нет).
type DestinationRepository struct {
	store storage.Store
}

func NewDestinationRepository(store storage.Store) *DestinationRepository {
	return &DestinationRepository{store: store}
}

func (r *DestinationRepository) List(ctx context.Context) []models.Destination {
	return storage.ReadCollection[models.Destination](ctx, r.store, storage.KeyDestinations)
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int) (models.Destination, bool) {
	for _, d := range r.List(ctx) {
		if d.ID == id {
			return d, true
		}
	}
	return models.Destination{}, false
}

// Create присваивает id = max(существующих) + 1, на пустой коллекции - 1
func (r *DestinationRepository) Create(ctx context.Context, dest models.Destination) (models.Destination, error) {
	destinations := r.List(ctx)
	maxID := 0
	for _, d := range destinations {
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	dest.ID = maxID + 1
	destinations = append(destinations, dest)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyDestinations, destinations); err != nil {
		return models.Destination{}, err
	}
	return dest, nil
}

func (r *DestinationRepository) Update(ctx context.Context, dest models.Destination) (bool, error) {
	destinations := r.List(ctx)
	found := false
	for i, d := range destinations {
		if d.ID == dest.ID {
			destinations[i] = dest
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}
	return true, storage.WriteCollection(ctx, r.store, storage.KeyDestinations, destinations)
}

func (r *DestinationRepository) Delete(ctx context.Context, id int) (bool, error) {
	destinations := r.List(ctx)
	filtered := make([]models.Destination, 0, len(destinations))
	for _, d := range destinations {
		if d.ID != id {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) == len(destinations) {
		return false, nil
	}
	return true, storage.WriteCollection(ctx, r.store, storage.KeyDestinations, filtered)
}
