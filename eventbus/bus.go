package eventbus

import "sync"

// Темы событий (имена как в исходной системе)
const (
	TopicDestinationChange = "destinationChange"
	TopicBookingChange     = "bookingChange"
	TopicUserChange        = "userChange"
)

// Handler вызывается синхронно при публикации события
type Handler func(topic string)

// Bus - шина событий в пределах процесса. Публикация синхронная,
// без очереди и без повтора для поздних подписчиков: кто не подписан
// в момент публикации, тот перечитает состояние при следующем обращении.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]Handler
}

func New() *Bus {
	return &Bus{handlers: make(map[string]map[int]Handler)}
}

// Subscribe регистрирует обработчик темы и возвращает функцию отписки.
// Отписку обязательно вызывать при завершении работы подписчика.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[topic][id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[topic], id)
	}
}

// Publish синхронно вызывает всех подписчиков темы. Fire-and-forget:
// доставка не гарантируется и не подтверждается.
func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers[topic]))
	for _, h := range b.handlers[topic] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()
	for _, h := range hs {
		h(topic)
	}
}
