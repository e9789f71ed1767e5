package engine

import (
	"time"

	"github.com/hollowmere/cardbound/content"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
	"github.com/hollowmere/cardbound/status"
)

// Resource holds singleton simulation resources, initialized at world
// creation and accessed via World.Resources
type Resource struct {
	Time    *TimeResource
	Config  *ConfigResource
	Events  *EventQueueResource
	Status  *status.Registry
	Content *content.Service
	Player  *PlayerResource
}

// TimeResource wraps tick time data for systems
// Updated by World.Tick before event dispatch
type TimeResource struct {
	// GameTime advances by exactly DeltaTime per tick
	GameTime time.Time

	// DeltaTime is the duration of the current tick
	DeltaTime time.Duration

	// FrameNumber is the tick counter
	FrameNumber int64
}

// Update modifies TimeResource fields in place
func (tr *TimeResource) Update(gameTime time.Time, dt time.Duration, frame int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = dt
	tr.FrameNumber = frame
}

// ConfigResource holds the static simulation configuration
type ConfigResource struct {
	TickInterval time.Duration
	AIInterval   time.Duration
	ArenaWidth   float64
	ArenaHeight  float64

	// PlayerImmortal suppresses all health mutation on the session player
	PlayerImmortal bool
}

// EventQueueResource wraps the event queue for producer access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// PlayerResource holds the session player entity reference
type PlayerResource struct {
	Entity core.Entity
}

func defaultConfigResource() *ConfigResource {
	return &ConfigResource{
		TickInterval: parameter.TickInterval,
		AIInterval:   parameter.AIDecisionInterval,
		ArenaWidth:   parameter.DefaultArenaWidth,
		ArenaHeight:  parameter.DefaultArenaHeight,
	}
}
