package parameter

import "time"

// Summon Lifecycle
const (
	// SummonFadeDuration is the fade-then-destroy window after expiry or death
	SummonFadeDuration = 400 * time.Millisecond

	// SummonSpawnOffset is how far from the caster a new summon appears
	SummonSpawnOffset = 2.0
)

// Card Economy
const (
	// CardSlotCount is the number of ability slots bound to input signals
	CardSlotCount = 4
)

// Hit Feedback
const (
	// HitFlashDuration is the transient visual flash applied on damage
	HitFlashDuration = 120 * time.Millisecond
)
