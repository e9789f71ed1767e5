package event

import (
	"time"

	"github.com/hollowmere/cardbound/core"
)

// SystemTogglePayload contains parameters for system activation control
type SystemTogglePayload struct {
	SystemName string
	Enabled    bool
}

// TimerStartPayload registers a countdown on an entity
// Expiry tags the entity for destruction
type TimerStartPayload struct {
	Entity   core.Entity
	Duration time.Duration
}

// MoveInputPayload carries the raw normalized directional input
type MoveInputPayload struct {
	X, Y float64
}

// CastRequestPayload identifies the activated card slot
type CastRequestPayload struct {
	Slot int
}

// DamageRequestPayload asks for damage through the pipeline
type DamageRequestPayload struct {
	Target core.Entity
	Amount float64
	Source core.Entity // NoEntity for environmental damage
}

// HealRequestPayload asks for a heal through the pipeline
type HealRequestPayload struct {
	Target core.Entity
	Amount float64
}

// KillRequestPayload forces a pipeline death
type KillRequestPayload struct {
	Target core.Entity
	Source core.Entity
}

// HealthChangedPayload reports the post-mutation health state
type HealthChangedPayload struct {
	Entity  core.Entity
	Current float64
	Max     float64
}

// DamageReceivedPayload reports applied damage and its source
type DamageReceivedPayload struct {
	Entity core.Entity
	Amount float64
	Source core.Entity
}

// HealReceivedPayload reports the actual heal delta after clamping
type HealReceivedPayload struct {
	Entity core.Entity
	Amount float64
}

// EntitySpawnedPayload reports a new simulation entity
type EntitySpawnedPayload struct {
	Entity core.Entity
	Kind   core.EntityKind
}

// EntityDiedPayload reports a terminal death
type EntityDiedPayload struct {
	Entity core.Entity
	Kind   core.EntityKind
	Source core.Entity
}

// PlayerSpawnedPayload reports the session player
type PlayerSpawnedPayload struct {
	Entity core.Entity
}

// PlayerDodgedPayload carries the captured dodge direction
type PlayerDodgedPayload struct {
	DirX, DirY float64
}

// PlayerDiedPayload carries the death position for camera/UI
type PlayerDiedPayload struct {
	X, Y float64
}

// EnergyChangedPayload reports the post-mutation energy state
type EnergyChangedPayload struct {
	Current float64
	Max     float64
}

// EnemyAttackedPayload reports an executed attack
type EnemyAttackedPayload struct {
	Entity core.Entity
	Target core.Entity
	Damage float64
}

// EnemyKilledPayload carries the kill reward yield from the profile
type EnemyKilledPayload struct {
	Entity     core.Entity
	Experience int
	Energy     float64
}

// SummonCreatedPayload reports a new summon and its bookkeeping keys
type SummonCreatedPayload struct {
	Entity    core.Entity
	Owner     core.Entity
	AbilityID string
	SummonID  uint64
}

// SummonEndedPayload reports a terminal summon path (expiry or death)
type SummonEndedPayload struct {
	Entity    core.Entity
	AbilityID string
	SummonID  uint64
}

// SecondaryUsedPayload reports a successful secondary activation
type SecondaryUsedPayload struct {
	Entity    core.Entity
	AbilityID string
	Effect    int // content.SecondaryEffect value, untyped to avoid the import
}

// CardCastPayload reports a successful primary cast
type CardCastPayload struct {
	Slot        int
	AbilityID   string
	ChargesLeft int
}

// CastRejectReason classifies why a slot activation failed
type CastRejectReason int

const (
	RejectNoCharges CastRejectReason = iota
	RejectNoEnergy
	RejectSummonActive
	RejectBadSlot
	RejectDead
)

// CastRejectedPayload is the diagnostic for a rejected activation
type CastRejectedPayload struct {
	Slot   int
	Reason CastRejectReason
}
