package realtime

import (
	"sync"
	"time"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
	EventAll    EventType = "*"
)

// AllTables subscribes to changes on every table.
const AllTables = "*"

// Event is one change notification: which table changed and how.
type Event struct {
	Table string    `json:"table"`
	Type  EventType `json:"type"`
	At    time.Time `json:"at"`
}

// Subscription is a cancellable handle on the change feed. The consumer owns
// the Unsubscribe call on teardown.
type Subscription struct {
	C <-chan Event

	hub   *Hub
	ch    chan Event
	table string
	typ   EventType
	once  sync.Once
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

func (s *Subscription) matches(ev Event) bool {
	if s.table != AllTables && s.table != ev.Table {
		return false
	}
	if s.typ != EventAll && s.typ != ev.Type {
		return false
	}
	return true
}

// Hub fans change events out to subscriptions keyed by table name and event
// type. Writers publish after every successful store write; other sessions
// refetch when notified.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers interest in a table ("*" for all) and an event type.
// buf is the channel capacity; a subscriber that falls behind loses events
// rather than blocking the writer.
func (h *Hub) Subscribe(table string, typ EventType, buf int) *Subscription {
	ch := make(chan Event, buf)
	sub := &Subscription{C: ch, hub: h, ch: ch, table: table, typ: typ}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Publish delivers the event to every matching subscription without blocking.
func (h *Hub) Publish(table string, typ EventType) {
	ev := Event{Table: table, Type: typ, At: time.Now()}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		if !sub.matches(ev) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// Close tears down all subscriptions at process shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(h.subs))
	for sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}
