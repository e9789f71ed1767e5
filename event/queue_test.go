package event

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventDamageRequest, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Consume returned %d events, want 5", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d, want %d", i, ev.Frame, i)
		}
	}

	if more := q.Consume(); more != nil {
		t.Errorf("second Consume returned %d events, want none", len(more))
	}
}

func TestQueueEmptyConsume(t *testing.T) {
	q := NewEventQueue()
	if events := q.Consume(); events != nil {
		t.Errorf("Consume on empty queue returned %d events", len(events))
	}
	if q.Len() != 0 {
		t.Errorf("Len on empty queue = %d, want 0", q.Len())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventHealRequest})
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		events := q.Consume()
		if len(events) == 0 {
			break
		}
		total += len(events)
	}

	if total != producers*perProducer {
		t.Errorf("consumed %d events, want %d", total, producers*perProducer)
	}
}
