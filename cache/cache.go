package cache

import (
	"sync"

	"hotel-server/entities"
)

// ActivityBuffer collects booking lifecycle events in memory until the
// recorder flushes them to the database in one batch.
type ActivityBuffer struct {
	mu     sync.RWMutex
	events []entities.BookingEvent
}

func NewActivityBuffer() *ActivityBuffer {
	return &ActivityBuffer{events: make([]entities.BookingEvent, 0)}
}

// Add appends an event to the buffer.
func (b *ActivityBuffer) Add(event entities.BookingEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

// Drain returns all buffered events and empties the buffer.
func (b *ActivityBuffer) Drain() []entities.BookingEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	drained := b.events
	b.events = make([]entities.BookingEvent, 0)
	return drained
}

// Snapshot returns a copy of the buffered events without clearing them.
func (b *ActivityBuffer) Snapshot() []entities.BookingEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()
	snapshot := make([]entities.BookingEvent, len(b.events))
	copy(snapshot, b.events)
	return snapshot
}

// Len returns the number of buffered events.
func (b *ActivityBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.events)
}
