package ecs

// EventKind identifies the kinds of events the event manager can dispatch.
// The set is closed: add a constant here before emitting a new kind.
type EventKind int

const (
	// EventDPRChanged fires when the device pixel ratio changes
	EventDPRChanged EventKind = iota + 1
)

// String returns a readable name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventDPRChanged:
		return "dpr changed"
	default:
		return "unknown"
	}
}

// Event interface that all events must implement
type Event interface {
	Kind() EventKind
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// SubscriptionID identifies a single handler registration
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventKind][]subscription
	nextID      SubscriptionID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventKind][]subscription),
	}
}

// Subscribe registers a handler for a specific event kind.
// Handlers run in registration order.
func (em *EventManager) Subscribe(kind EventKind, handler EventHandler) SubscriptionID {
	em.nextID++
	em.subscribers[kind] = append(em.subscribers[kind], subscription{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes the registration with the given id.
// It reports whether anything was removed.
func (em *EventManager) Unsubscribe(id SubscriptionID) bool {
	for kind, subs := range em.subscribers {
		for i, sub := range subs {
			if sub.id != id {
				continue
			}

			// Copy so an Emit iterating the old slice is not disturbed
			remaining := make([]subscription, 0, len(subs)-1)
			remaining = append(remaining, subs[:i]...)
			remaining = append(remaining, subs[i+1:]...)

			if len(remaining) == 0 {
				delete(em.subscribers, kind)
			} else {
				em.subscribers[kind] = remaining
			}
			return true
		}
	}
	return false
}

// Count returns the number of handlers registered for a kind
func (em *EventManager) Count(kind EventKind) int {
	return len(em.subscribers[kind])
}

// Emit dispatches an event to all subscribed handlers synchronously
func (em *EventManager) Emit(event Event) {
	subs, exists := em.subscribers[event.Kind()]
	if !exists {
		return
	}

	for _, sub := range subs {
		sub.handler(event)
	}
}
