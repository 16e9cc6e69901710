// internal/event/event.go
package event

// EventType names a game event.
type EventType string

// Event carries a fired event and optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans events out to subscribers. Everything runs on the game
// thread; no locking.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe registers a listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for several event types at once.
func (d *Dispatcher) SubscribeAll(eventTypes []EventType, listener Listener) {
	for _, et := range eventTypes {
		d.Subscribe(et, listener)
	}
}

// Unsubscribe removes a listener from one event type.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers the event to all subscribers, fire-and-forget.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
