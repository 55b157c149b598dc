package controllers

import (
	"io"

	"globetrek/eventbus"
	"globetrek/utils"

	"github.com/gin-gonic/gin"
)

type EventsController struct {
	bus *eventbus.Bus
}

func NewEventsController() *EventsController {
	return &EventsController{bus: utils.GetBus()}
}

// GET /events
// SSE-поток с именами тем: клиент, получив событие, перечитывает коллекцию.
// Буфер маленький и переполнение молча теряет события - доставка не
// гарантируется, опоздавший клиент просто перечитает состояние при подключении.
func (ec *EventsController) Stream(c *gin.Context) {
	events := make(chan string, 8)
	handler := func(topic string) {
		select {
		case events <- topic:
		default:
		}
	}

	unsubscribe := []func(){
		ec.bus.Subscribe(eventbus.TopicDestinationChange, handler),
		ec.bus.Subscribe(eventbus.TopicBookingChange, handler),
		ec.bus.Subscribe(eventbus.TopicUserChange, handler),
	}
	defer func() {
		for _, unsub := range unsubscribe {
			unsub()
		}
	}()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case topic := <-events:
			c.SSEvent("change", topic)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
