package component

import "time"

// FadeComponent drives a visual fade-out; purely presentational, the
// renderer derives alpha from Remaining/Total
type FadeComponent struct {
	Remaining time.Duration
	Total     time.Duration
}

// FlashComponent is the transient hit feedback applied on damage
type FlashComponent struct {
	Remaining time.Duration
}

// BoostComponent is a brief speed buff (summon heal-pulse side effect)
type BoostComponent struct {
	Remaining time.Duration
	Factor    float64
}
