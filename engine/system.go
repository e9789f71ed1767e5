package engine

import "github.com/hollowmere/cardbound/event"

// System is the per-tick simulation unit
// Update runs once per tick after event dispatch, in priority order
type System interface {
	// Name identifies the system for toggles and diagnostics
	Name() string

	// Priority orders execution; lower runs first
	Priority() int

	// Update advances the system by one tick
	Update()
}

// EventHandler processes routed events
// Systems implementing it are auto-registered when added to the world
type EventHandler interface {
	// HandleEvent processes a single event, synchronously, during the
	// dispatch phase before systems update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler consumes
	EventTypes() []event.EventType
}
