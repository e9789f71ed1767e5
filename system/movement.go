package system

import (
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
	"github.com/hollowmere/cardbound/vmath"
)

// MovementSystem integrates velocity into position for every kinetic body
// and clamps the result to the arena bounds. Runs after all state systems
// so a tick's velocity decisions land in the same tick's position
type MovementSystem struct {
	world *engine.World

	enabled bool
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
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
}

func (s *MovementSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()
	cfg := s.world.Resources.Config

	for _, e := range s.world.Components.Kinetic.GetAllEntities() {
		kin, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		if kin.VelX == 0 && kin.VelY == 0 {
			continue
		}

		kin.X = vmath.Clamp(kin.X+kin.VelX*dt, 0, cfg.ArenaWidth)
		kin.Y = vmath.Clamp(kin.Y+kin.VelY*dt, 0, cfg.ArenaHeight)
		s.world.Components.Kinetic.SetComponent(e, kin)
	}
}
