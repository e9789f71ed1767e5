package engine

import (
	"testing"
	"time"

	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/event"
)

func TestCreateDestroyEntity(t *testing.T) {
	w := NewWorld(event.NewEventQueue())

	e := w.CreateEntity()
	if e == core.NoEntity {
		t.Fatal("CreateEntity returned the null entity")
	}
	w.Components.Health.SetComponent(e, component.NewHealth(10))
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{X: 1, Y: 2})

	if w.EntityCount() != 1 {
		t.Errorf("EntityCount = %d, want 1", w.EntityCount())
	}

	w.DestroyEntity(e)
	if w.Components.Health.HasEntity(e) {
		t.Error("health component survived DestroyEntity")
	}
	if w.Components.Kinetic.HasEntity(e) {
		t.Error("kinetic component survived DestroyEntity")
	}
	if w.EntityCount() != 0 {
		t.Errorf("EntityCount after destroy = %d, want 0", w.EntityCount())
	}
}

func TestEntityIDsNeverReused(t *testing.T) {
	w := NewWorld(event.NewEventQueue())

	a := w.CreateEntity()
	w.DestroyEntity(a)
	b := w.CreateEntity()
	if b == a {
		t.Errorf("entity id %d was reused; stale weak references could alias", a)
	}
}

type recordingSystem struct {
	name     string
	priority int
	order    *[]string
	events   []event.EventType
	handled  []event.GameEvent
}

func (s *recordingSystem) Name() string     { return s.name }
func (s *recordingSystem) Priority() int    { return s.priority }
func (s *recordingSystem) Update()          { *s.order = append(*s.order, s.name) }
func (s *recordingSystem) EventTypes() []event.EventType {
	return s.events
}
func (s *recordingSystem) HandleEvent(ev event.GameEvent) {
	s.handled = append(s.handled, ev)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld(event.NewEventQueue())

	var order []string
	w.AddSystem(&recordingSystem{name: "late", priority: 100, order: &order})
	w.AddSystem(&recordingSystem{name: "early", priority: 1, order: &order})
	w.AddSystem(&recordingSystem{name: "mid", priority: 50, order: &order})

	w.Tick(20 * time.Millisecond)

	want := []string{"early", "mid", "late"}
	if len(order) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d ran %q, want %q", i, order[i], want[i])
		}
	}
}

func TestEventsDispatchBeforeUpdate(t *testing.T) {
	w := NewWorld(event.NewEventQueue())

	var order []string
	sys := &recordingSystem{
		name:     "listener",
		priority: 10,
		order:    &order,
		events:   []event.EventType{event.EventDodgeRequest},
	}
	w.AddSystem(sys)

	w.PushEvent(event.EventDodgeRequest, nil)
	w.Tick(20 * time.Millisecond)

	if len(sys.handled) != 1 {
		t.Fatalf("handler received %d events, want 1", len(sys.handled))
	}
	// Update ran after dispatch within the same tick
	if len(order) != 1 {
		t.Fatalf("update ran %d times, want 1", len(order))
	}
}

func TestEventTimestampsFollowTheClock(t *testing.T) {
	w := NewWorld(event.NewEventQueue())

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockTimeProvider(start)
	w.SetClock(clock)

	sys := &recordingSystem{
		name:   "listener",
		order:  new([]string),
		events: []event.EventType{event.EventDodgeRequest},
	}
	w.AddSystem(sys)

	w.PushEvent(event.EventDodgeRequest, nil)
	clock.Advance(time.Second)
	w.PushEvent(event.EventDodgeRequest, nil)
	w.Tick(20 * time.Millisecond)

	if len(sys.handled) != 2 {
		t.Fatalf("handler received %d events, want 2", len(sys.handled))
	}
	if got := sys.handled[0].Timestamp; !got.Equal(start) {
		t.Errorf("first timestamp = %v, want %v", got, start)
	}
	if got := sys.handled[1].Timestamp; !got.Equal(start.Add(time.Second)) {
		t.Errorf("second timestamp = %v, want %v", got, start.Add(time.Second))
	}
}

func TestTickAdvancesTime(t *testing.T) {
	w := NewWorld(event.NewEventQueue())

	start := w.Resources.Time.GameTime
	w.Tick(20 * time.Millisecond)
	w.Tick(20 * time.Millisecond)

	if got := w.Resources.Time.GameTime.Sub(start); got != 40*time.Millisecond {
		t.Errorf("game time advanced %v, want 40ms", got)
	}
	if w.Resources.Time.FrameNumber != 2 {
		t.Errorf("frame number = %d, want 2", w.Resources.Time.FrameNumber)
	}
}
