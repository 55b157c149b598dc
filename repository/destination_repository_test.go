package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"globetrek/models"
	"globetrek/storage"
)

// На пустой коллекции первое направление получает id = 1
func TestDestinationCreateEmptyCollection(t *testing.T) {
	repo := NewDestinationRepository(storage.NewMemoryStore())

	created, err := repo.Create(context.Background(), models.Destination{Name: "Maldives"})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

// id нового направления = max существующих + 1, дыры не переиспользуются
func TestDestinationCreateMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository(storage.NewMemoryStore())

	first, _ := repo.Create(ctx, models.Destination{Name: "Paris"})
	second, _ := repo.Create(ctx, models.Destination{Name: "Bali"})
	assert.Equal(t, first.ID+1, second.ID)

	// Удаляем первое: следующий id все равно растет от максимума
	ok, err := repo.Delete(ctx, first.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	third, _ := repo.Create(ctx, models.Destination{Name: "Rome"})
	assert.Equal(t, second.ID+1, third.ID)
}

// Удаление убирает ровно одну запись, остальные не трогает
func TestDestinationDeleteExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository(storage.NewMemoryStore())

	repo.Create(ctx, models.Destination{Name: "London"})
	target, _ := repo.Create(ctx, models.Destination{Name: "Dubai"})
	repo.Create(ctx, models.Destination{Name: "Tokyo"})

	ok, err := repo.Delete(ctx, target.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	rest := repo.List(ctx)
	assert.Len(t, rest, 2)
	for _, d := range rest {
		assert.NotEqual(t, target.ID, d.ID)
	}
}

// Удаление несуществующего id возвращает false без ошибки
func TestDestinationDeleteMissing(t *testing.T) {
	repo := NewDestinationRepository(storage.NewMemoryStore())
	ok, err := repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// Update заменяет запись целиком и сохраняет ее в хранилище
func TestDestinationUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository(storage.NewMemoryStore())

	created, _ := repo.Create(ctx, models.Destination{Name: "Singapore", Price: "Rs. 30,000"})
	created.Price = "Rs. 35,000"
	created.Rating = 4.8

	ok, err := repo.Update(ctx, created)
	assert.NoError(t, err)
	assert.True(t, ok)

	got, found := repo.GetByID(ctx, created.ID)
	assert.True(t, found)
	assert.Equal(t, "Rs. 35,000", got.Price)
	assert.Equal(t, 4.8, got.Rating)
}
