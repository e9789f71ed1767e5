package system

import (
	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// TimerSystem counts down entity timers and tags expired entities for the
// next destruction pass. Timers never fire mid-tick; expiry is observed
// at the tick boundary
type TimerSystem struct {
	world *engine.World

	enabled bool
}

func NewTimerSystem(world *engine.World) engine.System {
	s := &TimerSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *TimerSystem) Init() {
	s.enabled = true
}

func (s *TimerSystem) Name() string {
	return "timer"
}

func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

func (s *TimerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTimerStart,
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *TimerSystem) HandleEvent(ev event.GameEvent) {
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

	if ev.Type == event.EventTimerStart {
		if p, ok := ev.Payload.(*event.TimerStartPayload); ok {
			s.world.Components.Timer.SetComponent(p.Entity, component.TimerComponent{
				Remaining: p.Duration,
			})
		}
	}
}

func (s *TimerSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	for _, e := range s.world.Components.Timer.GetAllEntities() {
		timer, ok := s.world.Components.Timer.GetComponent(e)
		if !ok {
			continue
		}
		timer.Remaining -= dt
		if timer.Remaining > 0 {
			s.world.Components.Timer.SetComponent(e, timer)
			continue
		}
		s.world.Components.Timer.RemoveEntity(e)
		s.world.Components.Death.SetComponent(e, component.DeathComponent{})
	}
}
