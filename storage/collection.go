package storage

import (
	"context"
	"encoding/json"
)

// ReadCollection читает JSON-массив записей под ключом. Отсутствующий ключ
// или битый JSON трактуются как пустая коллекция - ошибка наружу не отдается.
func ReadCollection[T any](ctx context.Context, s Store, key string) []T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok || raw == "" {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// WriteCollection сериализует весь массив и заменяет значение под ключом.
// Ошибка записи возвращается вызывающему (в отличие от чтения).
func WriteCollection[T any](ctx context.Context, s Store, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(data))
}
