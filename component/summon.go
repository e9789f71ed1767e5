package component

import (
	"time"

	"github.com/hollowmere/cardbound/core"
)

// SummonComponent holds the summon lifecycle and secondary-ability economy.
// Expiry (timeout) and death (damage) are mutually exclusive terminal paths
// converging on the same fade-then-destroy sequence
type SummonComponent struct {
	// Owner is a weak reference to the caster; lookup only, never owning
	Owner core.Entity

	// AbilityID names the originating ability definition
	AbilityID string

	// SummonID is globally unique and monotonically increasing
	SummonID uint64

	// TimeAlive accumulates each tick toward Lifetime
	// Lifetime <= 0 means infinite: no countdown runs
	TimeAlive time.Duration
	Lifetime  time.Duration

	// Expired is the timeout-driven terminal flag, distinct from death
	Expired bool

	// SecondaryCooldown counts down from the last successful activation;
	// SecondaryUsed distinguishes "never used" (always permitted) from a
	// cooldown that happens to read zero
	SecondaryCooldown time.Duration
	SecondaryUsed     bool
}
