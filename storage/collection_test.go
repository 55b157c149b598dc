package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Тест закона round-trip: write -> read возвращает ту же последовательность
func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	records := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	err := WriteCollection(ctx, store, "records", records)
	assert.NoError(t, err)

	got := ReadCollection[record](ctx, store, "records")
	assert.Equal(t, records, got)
}

// Отсутствующий ключ читается как пустая коллекция
func TestCollectionAbsentKey(t *testing.T) {
	got := ReadCollection[record](context.Background(), NewMemoryStore(), "missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// Битый JSON трактуется как пустая коллекция, ошибки наружу нет
func TestCollectionMalformedJSON(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	assert.NoError(t, store.Set(ctx, "records", "{not json"))

	got := ReadCollection[record](ctx, store, "records")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// Keys фильтрует по шаблону
func TestMemoryStoreKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, "session:a", "1")
	store.Set(ctx, "session:b", "1")
	store.Set(ctx, "destinations", "[]")

	keys, err := store.Keys(ctx, "session:*")
	assert.NoError(t, err)
	assert.Len(t, keys, 2)
}
