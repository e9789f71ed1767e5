package system

import (
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// FadeSystem counts down the presentational timers: fades, hit flashes and
// speed boosts. Components are removed when their timer runs out; the
// renderer only reads them
type FadeSystem struct {
	world *engine.World

	enabled bool
}

func NewFadeSystem(world *engine.World) engine.System {
	s := &FadeSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *FadeSystem) Init() {
	s.enabled = true
}

func (s *FadeSystem) Name() string {
	return "fade"
}

func (s *FadeSystem) Priority() int {
	return parameter.PriorityFade
}

func (s *FadeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *FadeSystem) HandleEvent(ev event.GameEvent) {
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

func (s *FadeSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime

	for _, e := range s.world.Components.Fade.GetAllEntities() {
		fade, ok := s.world.Components.Fade.GetComponent(e)
		if !ok {
			continue
		}
		fade.Remaining -= dt
		if fade.Remaining <= 0 {
			s.world.Components.Fade.RemoveEntity(e)
			continue
		}
		s.world.Components.Fade.SetComponent(e, fade)
	}

	for _, e := range s.world.Components.Flash.GetAllEntities() {
		flash, ok := s.world.Components.Flash.GetComponent(e)
		if !ok {
			continue
		}
		flash.Remaining -= dt
		if flash.Remaining <= 0 {
			s.world.Components.Flash.RemoveEntity(e)
			continue
		}
		s.world.Components.Flash.SetComponent(e, flash)
	}

	for _, e := range s.world.Components.Boost.GetAllEntities() {
		boost, ok := s.world.Components.Boost.GetComponent(e)
		if !ok {
			continue
		}
		boost.Remaining -= dt
		if boost.Remaining <= 0 {
			s.world.Components.Boost.RemoveEntity(e)
			continue
		}
		s.world.Components.Boost.SetComponent(e, boost)
	}
}
