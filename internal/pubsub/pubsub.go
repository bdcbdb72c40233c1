package pubsub

import (
	"context"
)

// Message is the envelope passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "auth.login.succeeded").
	Topic string
	// UserID identifies the account the event is about, when known.
	UserID string
	// Payload contains the JSON-encoded event.
	Payload []byte
	// Metadata carries extra key-value context (e.g. request id).
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages with
	// the handler in the background until the context is cancelled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
