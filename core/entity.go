package core

// Entity is a unique identifier for a simulation entity
// Zero is never a valid entity and doubles as "no entity" in weak references
type Entity uint64

// NoEntity is the null entity reference
const NoEntity Entity = 0

// EntityKind classifies an entity for event payloads and targeting filters
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindEnemy
	KindSummon
)

// String returns the kind name for diagnostics
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindSummon:
		return "summon"
	default:
		return "unknown"
	}
}
