package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for event")
	}
	return Event[T]{}
}

func TestBroker_FanOut(t *testing.T) {
	b := NewBroker[int]()
	defer b.Shutdown()

	ctx := context.Background()
	first := b.Subscribe(ctx)
	second := b.Subscribe(ctx)
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish(UpdatedEvent, 42)

	assert.Equal(t, Event[int]{Type: UpdatedEvent, Payload: 42}, receive(t, first))
	assert.Equal(t, Event[int]{Type: UpdatedEvent, Payload: 42}, receive(t, second))
}

func TestBroker_UnsubscribeOnContextDone(t *testing.T) {
	b := NewBroker[string]()
	defer b.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	assert.Eventually(t, func() bool { return b.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-ch
	assert.False(t, ok)
}

func TestBroker_FullBufferDropsEvents(t *testing.T) {
	b := NewBrokerWithBuffer[int](1)
	defer b.Shutdown()

	ch := b.Subscribe(context.Background())
	b.Publish(UpdatedEvent, 1)
	b.Publish(UpdatedEvent, 2)

	assert.Equal(t, 1, receive(t, ch).Payload)
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %v", ev)
	default:
	}
}

func TestBroker_ShutdownClosesSubscribers(t *testing.T) {
	b := NewBroker[int]()
	ch := b.Subscribe(context.Background())

	b.Shutdown()
	b.Shutdown()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, b.SubscriberCount())

	// publish and subscribe after shutdown are harmless
	b.Publish(ResetEvent, 1)
	_, ok = <-b.Subscribe(context.Background())
	assert.False(t, ok)
}
