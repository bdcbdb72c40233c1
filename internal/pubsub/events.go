package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event binds a topic name to its payload type.
type Event[T any] struct {
	name string
}

// NewEvent declares a typed event on the given topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{name: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Decode unmarshals a received message into the event's payload type.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to decode %s payload: %w", e.name, err)
	}
	return payload, nil
}

// Publish sends a typed event. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		UserID:  userID,
		Payload: data,
	})
}

// LoginSucceeded is published after a successful sign-in.
type LoginSucceeded struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// LoginFailed is published after a sign-in the provider rejected.
type LoginFailed struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// AccountCreated is published after a successful registration.
type AccountCreated struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// RegistrationFailed is published after an account creation the provider rejected.
type RegistrationFailed struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// Auth events.
var (
	LoginSucceededEvent     = NewEvent[LoginSucceeded]("auth.login.succeeded")
	LoginFailedEvent        = NewEvent[LoginFailed]("auth.login.failed")
	AccountCreatedEvent     = NewEvent[AccountCreated]("auth.account.created")
	RegistrationFailedEvent = NewEvent[RegistrationFailed]("auth.register.failed")
)
