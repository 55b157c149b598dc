package repository

import (
	"context"
	"strconv"
	"time"

	"globetrek/models"
	"globetrek/storage"
)

// FeedbackRepository - отзывы: создание пользователем, удаление админом
type FeedbackRepository struct {
	store storage.Store
}

func NewFeedbackRepository(store storage.Store) *FeedbackRepository {
	return &FeedbackRepository{store: store}
}

func (r *FeedbackRepository) List(ctx context.Context) []models.Feedback {
	return storage.ReadCollection[models.Feedback](ctx, r.store, storage.KeyFeedback)
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	feedback.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	feedback.Date = time.Now().Format(time.RFC3339)
	items := r.List(ctx)
	items = append(items, feedback)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyFeedback, items); err != nil {
		return models.Feedback{}, err
	}
	return feedback, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) (bool, error) {
	items := r.List(ctx)
	filtered := make([]models.Feedback, 0, len(items))
	for _, f := range items {
		if f.ID != id {
			filtered = append(filtered, f)
		}
	}
	if len(filtered) == len(items) {
		return false, nil
	}
	return true, storage.WriteCollection(ctx, r.store, storage.KeyFeedback, filtered)
}
