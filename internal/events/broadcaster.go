// Package events carries alert lifecycle events to interested subscribers.
package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/yatriai/sos-alerts/internal/models"
)

type Kind string

const (
	KindCreated       Kind = "alert_created"
	KindStatusChanged Kind = "alert_status_changed"
)

// Event is a snapshot of an alert at the moment something happened to it.
// For status changes OldStatus/NewStatus carry the transition.
type Event struct {
	Kind         Kind               `json:"kind"`
	Alert        models.Alert       `json:"alert"`
	ReporterName string             `json:"reporterName,omitempty"`
	Actor        string             `json:"actor,omitempty"`
	OldStatus    models.AlertStatus `json:"oldStatus,omitempty"`
	NewStatus    models.AlertStatus `json:"newStatus,omitempty"`
	At           time.Time          `json:"at"`
}

// Broadcaster fans events out to subscriber channels. Slow subscribers are
// skipped rather than blocking the publisher.
type Broadcaster struct {
	subscribers map[uint64]chan Event
	nextID      atomic.Uint64
	mu          sync.RWMutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan Event),
	}
}

func (b *Broadcaster) Subscribe() (uint64, <-chan Event) {
	id := b.nextID.Add(1)
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	return id, ch
}

func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

func (b *Broadcaster) Broadcast(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- e:
		default:
			// Skip slow subscribers
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes all subscriber channels, ending their streams gracefully.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
