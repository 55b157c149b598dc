package repository

import (
	"context"
	"strconv"
	"time"

	"globetrek/models"
	"globetrek/storage"
)

// QueryRepository - обращения через форму контактов
type QueryRepository struct {
	store storage.Store
}

func NewQueryRepository(store storage.Store) *QueryRepository {
	return &QueryRepository{store: store}
}

func (r *QueryRepository) List(ctx context.Context) []models.ContactQuery {
	return storage.ReadCollection[models.ContactQuery](ctx, r.store, storage.KeyQueries)
}

func (r *QueryRepository) Create(ctx context.Context, query models.ContactQuery) (models.ContactQuery, error) {
	query.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	query.Date = time.Now().Format(time.RFC3339)
	query.Replied = false
	items := r.List(ctx)
	items = append(items, query)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyQueries, items); err != nil {
		return models.ContactQuery{}, err
	}
	return query, nil
}

// MarkReplied выставляет replied=true. Письмо никуда не отправляется -
// это только флаг статуса.
func (r *QueryRepository) MarkReplied(ctx context.Context, id string) (bool, error) {
	items := r.List(ctx)
	for i, q := range items {
		if q.ID == id {
			items[i].Replied = true
			return true, storage.WriteCollection(ctx, r.store, storage.KeyQueries, items)
		}
	}
	return false, nil
}

func (r *QueryRepository) Delete(ctx context.Context, id string) (bool, error) {
	items := r.List(ctx)
	filtered := make([]models.ContactQuery, 0, len(items))
	for _, q := range items {
		if q.ID != id {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == len(items) {
		return false, nil
	}
	return true, storage.WriteCollection(ctx, r.store, storage.KeyQueries, filtered)
}
