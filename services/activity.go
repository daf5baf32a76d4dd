package services

import (
	"log"
	"sync"
	"time"

	"hotel-server/cache"
	"hotel-server/entities"
	"hotel-server/repositories"
)

// ActivityRecorder buffers booking lifecycle events and flushes them to the
// booking_events table on a ticker. Recording is best-effort: it never blocks
// or fails the booking operation that produced the event.
type ActivityRecorder struct {
	buffer    *cache.ActivityBuffer
	eventRepo repositories.BookingEventRepository
	interval  time.Duration
	stop      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewActivityRecorder(eventRepo repositories.BookingEventRepository, interval time.Duration) *ActivityRecorder {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ActivityRecorder{
		buffer:    cache.NewActivityBuffer(),
		eventRepo: eventRepo,
		interval:  interval,
		stop:      make(chan struct{}),
	}
}

// Record buffers one event for the given booking mutation.
func (r *ActivityRecorder) Record(action string, booking *entities.Booking, userID uint) {
	r.buffer.Add(entities.BookingEvent{
		Action:        action,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		UserID:        userID,
		OccurredAt:    time.Now().UTC(),
	})
}

// Start flushes the buffer periodically in a background goroutine until
// Stop is called.
func (r *ActivityRecorder) Start() {
	ticker := time.NewTicker(r.interval)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Flush()
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop halts the flush goroutine after a final flush of whatever is
// buffered. Safe to call more than once.
func (r *ActivityRecorder) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
		r.wg.Wait()
		r.Flush()
	})
}

// Flush drains the buffer and writes the batch. Failed batches are logged and
// dropped; the audit trail is advisory.
func (r *ActivityRecorder) Flush() {
	events := r.buffer.Drain()
	if len(events) == 0 {
		return
	}
	if err := r.eventRepo.CreateBatch(events); err != nil {
		log.Printf("Error flushing %d booking events: %v", len(events), err)
		return
	}
	log.Printf("Flushed %d booking events", len(events))
}

// Pending returns the number of buffered, not yet flushed events.
func (r *ActivityRecorder) Pending() int {
	return r.buffer.Len()
}

// Buffered returns a copy of the unflushed events.
func (r *ActivityRecorder) Buffered() []entities.BookingEvent {
	return r.buffer.Snapshot()
}
