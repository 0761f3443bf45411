package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounceCoalescesBurst(t *testing.T) {
	in := make(chan Event, 16)
	out := Debounce(in, 30*time.Millisecond)

	for i := 0; i < 5; i++ {
		in <- Event{Table: "order_history", Type: EventInsert}
	}

	ev := recvEvent(t, out)
	assert.Equal(t, "order_history", ev.Table)

	// The burst collapsed to a single delivery.
	select {
	case extra := <-out:
		t.Fatalf("unexpected extra event %+v", extra)
	case <-time.After(80 * time.Millisecond):
	}

	close(in)
}

func TestDebounceSeparateBurstsDeliverSeparately(t *testing.T) {
	in := make(chan Event, 16)
	out := Debounce(in, 20*time.Millisecond)

	in <- Event{Table: "expenses", Type: EventInsert}
	first := recvEvent(t, out)
	assert.Equal(t, "expenses", first.Table)

	in <- Event{Table: "order_history", Type: EventDelete}
	second := recvEvent(t, out)
	assert.Equal(t, "order_history", second.Table)

	close(in)
}

func TestDebounceFlushesPendingOnClose(t *testing.T) {
	in := make(chan Event, 1)
	out := Debounce(in, time.Hour)

	in <- Event{Table: "expenses", Type: EventUpdate}
	close(in)

	ev := recvEvent(t, out)
	assert.Equal(t, "expenses", ev.Table)

	_, open := <-out
	require.False(t, open, "output closes after input closes")
}
