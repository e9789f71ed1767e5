package system

import (
	"sync/atomic"

	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// DeathSystem destroys entities tagged with the death marker
// Destruction is always deferred to this pass so weak references held by
// other systems only ever dangle between ticks, never within one
type DeathSystem struct {
	world *engine.World

	statDestroyed *atomic.Int64

	enabled bool
}

func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{
		world: world,
	}
	s.statDestroyed = world.Resources.Status.Ints.Get("death.destroyed")
	s.Init()
	return s
}

func (s *DeathSystem) Init() {
	s.statDestroyed.Store(0)
	s.enabled = true
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
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

func (s *DeathSystem) Update() {
	if !s.enabled {
		return
	}

	tagged := s.world.Components.Death.GetAllEntities()
	for _, e := range tagged {
		s.world.DestroyEntity(e)
		s.statDestroyed.Add(1)
	}
}
