package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvault/booking-api/pkg/messaging"
)

func newTestBroker(t *testing.T) messaging.Broker {
	t.Helper()
	mr := miniredis.RunT(t)

	broker, err := NewRedisBroker(Config{URL: "redis://" + mr.Addr()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { broker.Close() })
	return broker
}

func TestPublishSubscribe(t *testing.T) {
	broker := newTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := broker.Subscribe(ctx, messaging.ChannelAppointmentCreated)
	require.NoError(t, err)

	err = broker.Publish(ctx, messaging.ChannelAppointmentCreated, messaging.Message{
		Type:    "appointment.created",
		Payload: map[string]string{"status": "PENDING"},
	})
	require.NoError(t, err)

	select {
	case raw := <-msgs:
		var msg messaging.Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "appointment.created", msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestSubscribeDeliversImmediatePublishes(t *testing.T) {
	broker := newTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := broker.Subscribe(ctx, messaging.ChannelAppointmentCreated)
	require.NoError(t, err)

	// no settling delay: the subscription must already be active when
	// Subscribe returns
	const sent = 5
	for i := 0; i < sent; i++ {
		require.NoError(t, broker.Publish(ctx, messaging.ChannelAppointmentCreated, messaging.Message{
			Type: "appointment.created",
		}))
	}

	for i := 0; i < sent; i++ {
		select {
		case <-msgs:
		case <-time.After(2 * time.Second):
			t.Fatalf("message %d of %d never arrived", i+1, sent)
		}
	}
}

func TestSubscribeClosesOnCancel(t *testing.T) {
	broker := newTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())

	msgs, err := broker.Subscribe(ctx, messaging.ChannelAppointmentStatusChanged)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-msgs:
		assert.False(t, open, "channel should close after cancellation")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancellation")
	}
}

func TestPublishUnmarshalableMessage(t *testing.T) {
	broker := newTestBroker(t)

	err := broker.Publish(context.Background(), "test", make(chan int))
	assert.Error(t, err)
}

func TestNewRedisBrokerBadURL(t *testing.T) {
	_, err := NewRedisBroker(Config{URL: "not-a-url"}, nil)
	assert.Error(t, err)
}
