package system

import (
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// TryConsumeEnergy checks and deducts an energy cost in one step
// Returns false without mutation when the pool cannot cover the cost
func TryConsumeEnergy(w *engine.World, entity core.Entity, cost float64) bool {
	en, ok := w.Components.Energy.GetComponent(entity)
	if !ok || en.Current < cost {
		return false
	}
	en.Current -= cost
	w.Components.Energy.SetComponent(entity, en)

	w.PushEvent(event.EventEnergyChanged, &event.EnergyChangedPayload{
		Current: en.Current,
		Max:     en.Max,
	})
	return true
}

// EnergySystem regenerates the player energy pool and banks kill rewards
type EnergySystem struct {
	world *engine.World

	enabled bool
}

func NewEnergySystem(world *engine.World) engine.System {
	s := &EnergySystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *EnergySystem) Init() {
	s.enabled = true
}

func (s *EnergySystem) Name() string {
	return "energy"
}

func (s *EnergySystem) Priority() int {
	return parameter.PriorityEnergy
}

func (s *EnergySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *EnergySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if ev.Type == event.EventSystemToggle {
		if payload, ok := ev.Payload.(*event.SystemTogglePayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	}

	if !s.enabled {
		return
	}

	if ev.Type == event.EventEnemyKilled {
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			s.addPlayerEnergy(p.Energy)
		}
	}
}

func (s *EnergySystem) Update() {
	if !s.enabled {
		return
	}

	player := s.world.Resources.Player.Entity
	hp, ok := s.world.Components.Health.GetComponent(player)
	if !ok || !hp.Alive {
		return
	}

	en, ok := s.world.Components.Energy.GetComponent(player)
	if !ok || en.Current >= en.Max {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()
	en.Current += en.Regen * dt
	if en.Current > en.Max {
		en.Current = en.Max
	}
	s.world.Components.Energy.SetComponent(player, en)

	s.world.PushEvent(event.EventEnergyChanged, &event.EnergyChangedPayload{
		Current: en.Current,
		Max:     en.Max,
	})
}

func (s *EnergySystem) addPlayerEnergy(amount float64) {
	player := s.world.Resources.Player.Entity
	en, ok := s.world.Components.Energy.GetComponent(player)
	if !ok || amount <= 0 {
		return
	}
	en.Current += amount
	if en.Current > en.Max {
		en.Current = en.Max
	}
	s.world.Components.Energy.SetComponent(player, en)

	s.world.PushEvent(event.EventEnergyChanged, &event.EnergyChangedPayload{
		Current: en.Current,
		Max:     en.Max,
	})
	s.world.Resources.Status.Floats.Get("energy.kill_reward").Add(amount)
}
