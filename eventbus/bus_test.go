package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Публикация синхронно доходит до всех подписчиков темы
func TestPublishReachesSubscribers(t *testing.T) {
	bus := New()
	var got []string
	bus.Subscribe(TopicDestinationChange, func(topic string) {
		got = append(got, topic)
	})
	bus.Subscribe(TopicDestinationChange, func(topic string) {
		got = append(got, topic)
	})

	bus.Publish(TopicDestinationChange)
	assert.Len(t, got, 2)
	assert.Equal(t, TopicDestinationChange, got[0])
}

// Подписчик другой темы событие не получает
func TestPublishOtherTopic(t *testing.T) {
	bus := New()
	called := false
	bus.Subscribe(TopicBookingChange, func(string) { called = true })

	bus.Publish(TopicDestinationChange)
	assert.False(t, called)
}

// После отписки обработчик больше не вызывается
func TestUnsubscribe(t *testing.T) {
	bus := New()
	calls := 0
	unsub := bus.Subscribe(TopicUserChange, func(string) { calls++ })

	bus.Publish(TopicUserChange)
	unsub()
	bus.Publish(TopicUserChange)

	assert.Equal(t, 1, calls)
}

// Нет повтора для поздних подписчиков: событие до подписки потеряно
func TestNoReplayForLateSubscriber(t *testing.T) {
	bus := New()
	bus.Publish(TopicBookingChange)

	called := false
	bus.Subscribe(TopicBookingChange, func(string) { called = true })
	assert.False(t, called)
}
