package parameter

import "time"

// Enemy Lifecycle
const (
	// DeathGraceDelay is how long a dead enemy lingers (fading) before
	// despawn, so death effects can play out
	DeathGraceDelay = 1 * time.Second
)
