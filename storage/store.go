package storage

import "context"

// Ключи коллекций. Каждый ключ хранит сериализованный JSON-массив записей.
const (
	KeyDestinations  = "destinations"
	KeyBookings      = "userBookings"
	KeyFeedback      = "userFeedback"
	KeyQueries       = "contactQueries"
	KeySchemaVersion = "destinationsSchemaVersion"

	SessionKeyPrefix   = "session:"
	BlacklistKeyPrefix = "blacklist:"
)

// Store - key-value хранилище строк. Единственный примитив записи -
// полная замена значения под ключом, частичных обновлений нет.
type Store interface {
	// Get возвращает значение и признак наличия ключа
	Get(ctx context.Context, key string) (string, bool, error)
	// Set полностью заменяет значение под ключом
	Set(ctx context.Context, key, value string) error
	// Del удаляет ключ
	Del(ctx context.Context, key string) error
	// Keys возвращает ключи по шаблону (для обхода сессий)
	Keys(ctx context.Context, pattern string) ([]string, error)
}
