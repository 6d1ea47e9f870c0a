package pubsub

import "context"

// EventType says what happened to the published value.
type EventType string

const (
	// UpdatedEvent carries the value after a single mutation.
	UpdatedEvent EventType = "updated"
	// ResetEvent carries the value after it was reset to defaults.
	ResetEvent EventType = "reset"
	// ReloadedEvent carries the value after it was re-read from the store.
	ReloadedEvent EventType = "reloaded"
)

type Event[T any] struct {
	Type    EventType
	Payload T
}

type Subscriber[T any] interface {
	Subscribe(context.Context) <-chan Event[T]
}

type Publisher[T any] interface {
	Publish(EventType, T)
}
