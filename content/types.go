package content

import "time"

// BehaviorKind is the closed set of enemy target-acquisition policies
type BehaviorKind int

const (
	// BehaviorAggressive targets the nearest player-tagged entity in
	// detection range
	BehaviorAggressive BehaviorKind = iota

	// BehaviorDefensive stays untargeted until struck; the damage source
	// becomes the target regardless of range
	BehaviorDefensive

	// BehaviorPassive never acquires a target
	BehaviorPassive

	// BehaviorGuardian scans detection range each idle decision tick and
	// locks onto the first player- or summon-tagged candidate
	BehaviorGuardian

	// BehaviorSwarm adopts the target of an already-aggroed enemy of the
	// same kind within detection range; no independent detection
	BehaviorSwarm
)

// String returns the behavior name for diagnostics
func (b BehaviorKind) String() string {
	switch b {
	case BehaviorAggressive:
		return "aggressive"
	case BehaviorDefensive:
		return "defensive"
	case BehaviorPassive:
		return "passive"
	case BehaviorGuardian:
		return "guardian"
	case BehaviorSwarm:
		return "swarm"
	default:
		return "unknown"
	}
}

// EnemyProfile is the immutable, shared stat/range/behavior record for an
// enemy kind. Externally authored; instances hold a read-only reference
type EnemyProfile struct {
	Kind     string
	Behavior BehaviorKind

	MaxHealth float64
	MoveSpeed float64 // units per second

	DetectionRange float64
	AggroDropRange float64 // > DetectionRange
	AttackRange    float64

	AttackDamage   float64
	AttackInterval time.Duration

	// Kill reward yield
	Experience  int
	EnergyYield float64
}

// SecondaryEffect is the closed set of summon secondary-ability variants
type SecondaryEffect int

const (
	// SecondaryNone means the ability declares no secondary effect
	SecondaryNone SecondaryEffect = iota

	// SecondaryAreaHeal pulses a heal and a brief haste boost around the
	// summon, affecting owner-side entities
	SecondaryAreaHeal

	// SecondaryAreaNova pulses damage to hostile entities around the summon
	SecondaryAreaNova
)

// String returns the effect name for diagnostics
func (s SecondaryEffect) String() string {
	switch s {
	case SecondaryAreaHeal:
		return "area-heal"
	case SecondaryAreaNova:
		return "area-nova"
	default:
		return "none"
	}
}

// AbilityDef is the per-card record: cast economics plus the spawn payload
// for the summon it creates
type AbilityDef struct {
	ID   string
	Name string

	EnergyCost float64
	MaxCharges int

	// Summon spawn payload
	SummonHealth float64
	Lifetime     time.Duration // <= 0 means infinite

	// Secondary-ability economy
	Secondary         SecondaryEffect
	SecondaryCooldown time.Duration
	SecondaryRadius   float64
	SecondaryPower    float64 // heal amount or nova damage
}

// HasSecondary reports whether the ability declares a secondary effect
func (a *AbilityDef) HasSecondary() bool {
	return a.Secondary != SecondaryNone
}
