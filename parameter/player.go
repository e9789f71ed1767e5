package parameter

import "time"

// Player Movement
const (
	// InputDeadZone is the minimum input magnitude treated as movement intent
	InputDeadZone = 0.1

	// PlayerMoveSpeed is units per second while Moving
	PlayerMoveSpeed = 14.0

	// PlayerDodgeSpeed is units per second while Dodging (ignores live input)
	PlayerDodgeSpeed = 42.0
)

// Dodge Timing
const (
	// DodgeDuration is how long the dodge burst and its invulnerability last
	DodgeDuration = 200 * time.Millisecond

	// DodgeCooldown gates the next dodge, measured from dodge start
	// Strictly longer than DodgeDuration
	DodgeCooldown = 900 * time.Millisecond
)

// Casting
const (
	// CastLockDuration is how long a card cast blocks movement
	CastLockDuration = 300 * time.Millisecond
)

// Energy Resource
const (
	PlayerMaxEnergy = 100.0

	// PlayerEnergyRegen is energy per second while alive
	PlayerEnergyRegen = 8.0
)

// PlayerMaxHealth is the session player's health pool
const PlayerMaxHealth = 100.0
