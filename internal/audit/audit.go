// Package audit records authentication events published by the flows.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/pubsub"
)

// Log writes every auth event to a structured logger and keeps per-topic
// counts.
type Log struct {
	logger *slog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// New creates an audit log. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger.With("component", "audit"), counts: make(map[string]int)}
}

// Start subscribes to the auth events. Subscriptions end with ctx.
func (l *Log) Start(ctx context.Context, sub pubsub.Subscriber) error {
	subscriptions := map[string]pubsub.Handler{
		pubsub.LoginSucceededEvent.Name():     l.loginSucceeded,
		pubsub.LoginFailedEvent.Name():        l.loginFailed,
		pubsub.AccountCreatedEvent.Name():     l.accountCreated,
		pubsub.RegistrationFailedEvent.Name(): l.registrationFailed,
	}
	for topic, handler := range subscriptions {
		if err := sub.Subscribe(ctx, topic, handler); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}
	return nil
}

// Counts returns a snapshot of events seen per topic.
func (l *Log) Counts() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}

func (l *Log) count(topic string) {
	l.mu.Lock()
	l.counts[topic]++
	l.mu.Unlock()
}

func (l *Log) loginSucceeded(ctx context.Context, msg pubsub.Message) error {
	e, err := pubsub.LoginSucceededEvent.Decode(msg)
	if err != nil {
		return err
	}
	l.count(msg.Topic)
	l.logger.InfoContext(ctx, "Login succeeded", "user_id", e.UserID, "email", authflow.MaskEmail(e.Email))
	return nil
}

func (l *Log) loginFailed(ctx context.Context, msg pubsub.Message) error {
	e, err := pubsub.LoginFailedEvent.Decode(msg)
	if err != nil {
		return err
	}
	l.count(msg.Topic)
	l.logger.WarnContext(ctx, "Login failed", "email", authflow.MaskEmail(e.Email), "reason", e.Reason)
	return nil
}

func (l *Log) accountCreated(ctx context.Context, msg pubsub.Message) error {
	e, err := pubsub.AccountCreatedEvent.Decode(msg)
	if err != nil {
		return err
	}
	l.count(msg.Topic)
	l.logger.InfoContext(ctx, "Account created", "user_id", e.UserID, "email", authflow.MaskEmail(e.Email))
	return nil
}

func (l *Log) registrationFailed(ctx context.Context, msg pubsub.Message) error {
	e, err := pubsub.RegistrationFailedEvent.Decode(msg)
	if err != nil {
		return err
	}
	l.count(msg.Topic)
	l.logger.WarnContext(ctx, "Registration failed", "email", authflow.MaskEmail(e.Email), "reason", e.Reason)
	return nil
}
