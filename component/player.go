package component

import "time"

// PlayerState is the mutually exclusive player state machine state
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerMoving
	PlayerDodging
	PlayerCasting
	PlayerDead
)

// String returns the state name for diagnostics
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerMoving:
		return "moving"
	case PlayerDodging:
		return "dodging"
	case PlayerCasting:
		return "casting"
	case PlayerDead:
		return "dead"
	default:
		return "unknown"
	}
}

// PlayerComponent holds the movement/dodge/cast state machine.
// One instance per session
type PlayerComponent struct {
	State PlayerState

	// Live normalized movement input, written each tick from input events
	MoveX, MoveY float64

	// Last non-trivial movement direction; persists across idle frames so
	// a dodge without input still has a direction
	FacingX, FacingY float64

	// Direction captured at dodge start; live input is ignored while dodging
	DodgeDirX, DodgeDirY float64

	// DodgeRemaining holds the dodge burst; targetability restores when it
	// expires. DodgeCooldown gates the next dodge and runs longer
	DodgeRemaining time.Duration
	DodgeCooldown  time.Duration

	// CastRemaining blocks movement while a card cast resolves
	CastRemaining time.Duration
}
