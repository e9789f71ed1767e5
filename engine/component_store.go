package engine

import (
	"github.com/hollowmere/cardbound/component"
)

// ComponentStore holds one typed store per component kind
// Systems access stores through World.Components; pointers stay valid for
// the world's lifetime
type ComponentStore struct {
	// Identity and body
	Kind    *Store[component.KindComponent]
	Health  *Store[component.HealthComponent]
	Kinetic *Store[component.KineticComponent]

	// Actor state machines
	Player *Store[component.PlayerComponent]
	Energy *Store[component.EnergyComponent]
	Enemy  *Store[component.EnemyComponent]
	Summon *Store[component.SummonComponent]

	// Effects
	Fade  *Store[component.FadeComponent]
	Flash *Store[component.FlashComponent]
	Boost *Store[component.BoostComponent]

	// Lifecycle
	Timer *Store[component.TimerComponent]
	Death *Store[component.DeathComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kind:    NewStore[component.KindComponent](),
		Health:  NewStore[component.HealthComponent](),
		Kinetic: NewStore[component.KineticComponent](),

		Player: NewStore[component.PlayerComponent](),
		Energy: NewStore[component.EnergyComponent](),
		Enemy:  NewStore[component.EnemyComponent](),
		Summon: NewStore[component.SummonComponent](),

		Fade:  NewStore[component.FadeComponent](),
		Flash: NewStore[component.FlashComponent](),
		Boost: NewStore[component.BoostComponent](),

		Timer: NewStore[component.TimerComponent](),
		Death: NewStore[component.DeathComponent](),
	}
}
