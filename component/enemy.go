package component

import (
	"time"

	"github.com/hollowmere/cardbound/content"
	"github.com/hollowmere/cardbound/core"
)

// EnemyAIState is the enemy state machine state
type EnemyAIState int

const (
	EnemyIdle EnemyAIState = iota
	EnemyFollowing
	EnemyAttacking
)

// String returns the state name for diagnostics
func (s EnemyAIState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyFollowing:
		return "following"
	case EnemyAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// EnemyComponent holds the mutable AI state over an immutable shared profile
type EnemyComponent struct {
	// Profile is the shared read-only stat/range/behavior record
	Profile *content.EnemyProfile

	State EnemyAIState

	// Target is a weak reference, re-resolved by lookup each use;
	// a miss means "no target", never a fault
	Target core.Entity

	AttackCooldown time.Duration
	Aggro          bool

	// LastAttacker drives the defensive struck-aggro policy
	LastAttacker core.Entity
}
