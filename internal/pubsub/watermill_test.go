package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bus := NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bus.Subscribe(ctx, LoginSucceededEvent.Name(), func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = Publish(ctx, bus, LoginSucceededEvent, "uid-1", LoginSucceeded{UserID: "uid-1", Email: "a@b.co"})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "auth.login.succeeded", msg.Topic)
		assert.Equal(t, "uid-1", msg.UserID)
		assert.NotContains(t, msg.Metadata, metaKeyTopic)

		payload, err := LoginSucceededEvent.Decode(msg)
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", payload.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestEventDecode_BadPayload(t *testing.T) {
	_, err := AccountCreatedEvent.Decode(Message{Topic: "auth.account.created", Payload: []byte("{")})
	assert.Error(t, err)
}

func TestMessageMapping_PreservesMetadata(t *testing.T) {
	wm := mapToWatermillMessage(Message{
		Topic:    "auth.login.failed",
		UserID:   "",
		Payload:  []byte(`{}`),
		Metadata: map[string]string{"request_id": "r-1"},
	})
	back := mapToPubSubMessage(wm)
	assert.Equal(t, "auth.login.failed", back.Topic)
	assert.Equal(t, "r-1", back.Metadata["request_id"])
}
