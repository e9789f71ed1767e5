package component

// HealthComponent is the shared entity health pool and lifecycle flags
// Invariants: Current stays in [0, Max]; Alive is terminal once false
type HealthComponent struct {
	Current float64
	Max     float64

	// Alive flips false exactly once, in the damage pipeline
	Alive bool

	// Targetable is the configured flag; effective targetability also
	// requires Alive
	Targetable bool

	// Immortal suppresses all health mutation (damage and heal)
	Immortal bool
}

// CanBeTargeted is the derived targeting predicate
func (h *HealthComponent) CanBeTargeted() bool {
	return h.Targetable && h.Alive
}

// NewHealth returns a full, alive, targetable pool
func NewHealth(max float64) HealthComponent {
	return HealthComponent{
		Current:    max,
		Max:        max,
		Alive:      true,
		Targetable: true,
	}
}
