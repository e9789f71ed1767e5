package parameter

import "time"

// Simulation Loop Timing
const (
	// TickInterval is the fixed simulation step (movement, timers, attacks)
	TickInterval = 20 * time.Millisecond

	// AIDecisionInterval is the slow cadence for enemy target search and
	// state transitions, independent of the physics tick rate
	AIDecisionInterval = 100 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo (EventQueueSize - 1)
	EventBufferMask = EventQueueSize - 1
)

// Arena Defaults
const (
	DefaultArenaWidth  = 120.0
	DefaultArenaHeight = 60.0
)
