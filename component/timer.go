package component

import "time"

// TimerComponent counts down to deferred destruction
type TimerComponent struct {
	Remaining time.Duration
}

// DeathComponent tags an entity for destruction on the next death pass
type DeathComponent struct{}
