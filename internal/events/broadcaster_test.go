package events

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/yatriai/sos-alerts/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testEvent(id string) Event {
	return Event{
		Kind: KindCreated,
		Alert: models.Alert{
			ID:     id,
			Status: models.StatusActive,
		},
		At: time.Now().UTC(),
	}
}

func TestBroadcaster_SubscribeAndReceive(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	b.Broadcast(testEvent("sos_1"))

	select {
	case e := <-ch:
		if e.Alert.ID != "sos_1" {
			t.Errorf("expected alert sos_1, got %s", e.Alert.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("event not received")
	}
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()

	b.Unsubscribe(id)
	if b.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", b.SubscriberCount())
	}

	// Channel is closed after unsubscribe.
	if _, ok := <-ch; ok {
		t.Error("expected closed channel")
	}

	// Unsubscribing twice is harmless.
	b.Unsubscribe(id)
}

func TestBroadcaster_SlowSubscriberDropped(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	// Overfill the subscriber buffer; Broadcast must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Broadcast(testEvent("sos_flood"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a slow subscriber")
	}

	if len(ch) != cap(ch) {
		t.Errorf("expected full buffer of %d, got %d", cap(ch), len(ch))
	}
}

func TestBroadcaster_Close(t *testing.T) {
	b := NewBroadcaster()
	_, ch1 := b.Subscribe()
	_, ch2 := b.Subscribe()

	b.Close()

	for _, ch := range []<-chan Event{ch1, ch2} {
		if _, ok := <-ch; ok {
			t.Error("expected closed channel after Close")
		}
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers after Close, got %d", b.SubscriberCount())
	}
}
