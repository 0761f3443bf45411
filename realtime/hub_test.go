package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubFiltersByTableAndType(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	orders := hub.Subscribe("orders", EventAll, 4)
	inserts := hub.Subscribe("orders", EventInsert, 4)
	everything := hub.Subscribe(AllTables, EventAll, 4)

	hub.Publish("orders", EventDelete)
	hub.Publish("expenses", EventInsert)

	ev := recvEvent(t, orders.C)
	assert.Equal(t, "orders", ev.Table)
	assert.Equal(t, EventDelete, ev.Type)

	// The insert-only subscription saw nothing.
	select {
	case ev := <-inserts.C:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}

	first := recvEvent(t, everything.C)
	second := recvEvent(t, everything.C)
	assert.Equal(t, "orders", first.Table)
	assert.Equal(t, "expenses", second.Table)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub := hub.Subscribe("orders", EventAll, 4)
	sub.Unsubscribe()

	// Publishing after unsubscribe must not panic or deliver.
	hub.Publish("orders", EventInsert)

	_, open := <-sub.C
	assert.False(t, open, "channel closed after unsubscribe")

	// Second unsubscribe is a no-op.
	sub.Unsubscribe()
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub := hub.Subscribe("orders", EventAll, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.Publish("orders", EventInsert)
		hub.Publish("orders", EventInsert)
		hub.Publish("orders", EventInsert)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	require.Len(t, sub.C, 1)
}
