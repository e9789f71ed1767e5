package system

import (
	"sync/atomic"
	"time"

	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/content"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
	"github.com/hollowmere/cardbound/vmath"
)

// SummonSystem runs the summon lifetime countdown and the two terminal
// paths. Expiry and death are mutually exclusive: whichever fires first
// marks the summon so the other can never follow, and both converge on
// the same fade-then-destroy teardown
type SummonSystem struct {
	world *engine.World

	statExpired *atomic.Int64
	statDied    *atomic.Int64

	enabled bool
}

func NewSummonSystem(world *engine.World) engine.System {
	s := &SummonSystem{
		world: world,
	}
	s.statExpired = world.Resources.Status.Ints.Get("summon.expired")
	s.statDied = world.Resources.Status.Ints.Get("summon.died")
	s.Init()
	return s
}

func (s *SummonSystem) Init() {
	s.statExpired.Store(0)
	s.statDied.Store(0)
	s.enabled = true
}

func (s *SummonSystem) Name() string {
	return "summon"
}

func (s *SummonSystem) Priority() int {
	return parameter.PrioritySummon
}

func (s *SummonSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntityDied,
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *SummonSystem) HandleEvent(ev event.GameEvent) {
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

	if ev.Type == event.EventEntityDied {
		if p, ok := ev.Payload.(*event.EntityDiedPayload); ok {
			if p.Kind == core.KindSummon {
				s.onSummonDeath(p.Entity)
			}
		}
	}
}

// onSummonDeath handles the damage-driven terminal path. An already
// expired summon cannot die; the pipeline's Alive guard ensures the
// reverse ordering too
func (s *SummonSystem) onSummonDeath(entity core.Entity) {
	sc, ok := s.world.Components.Summon.GetComponent(entity)
	if !ok || sc.Expired {
		return
	}

	s.statDied.Add(1)
	s.world.PushEvent(event.EventSummonDied, &event.SummonEndedPayload{
		Entity:    entity,
		AbilityID: sc.AbilityID,
		SummonID:  sc.SummonID,
	})
	s.teardown(entity)
}

func (s *SummonSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime

	for _, e := range s.world.Components.Summon.GetAllEntities() {
		sc, ok := s.world.Components.Summon.GetComponent(e)
		if !ok || sc.Expired {
			continue
		}

		if sc.SecondaryCooldown > 0 {
			sc.SecondaryCooldown -= dt
			if sc.SecondaryCooldown < 0 {
				sc.SecondaryCooldown = 0
			}
		}

		hp, hasHP := s.world.Components.Health.GetComponent(e)
		if !hasHP || !hp.Alive {
			s.world.Components.Summon.SetComponent(e, sc)
			continue
		}

		sc.TimeAlive += dt
		if sc.Lifetime > 0 && sc.TimeAlive >= sc.Lifetime {
			s.expire(e, &sc, hp)
		}
		s.world.Components.Summon.SetComponent(e, sc)
	}
}

// expire handles the timeout-driven terminal path. The summon is marked
// expired and made immortal so no late damage can start the death path
func (s *SummonSystem) expire(entity core.Entity, sc *component.SummonComponent, hp component.HealthComponent) {
	sc.Expired = true

	hp.Targetable = false
	hp.Immortal = true
	s.world.Components.Health.SetComponent(entity, hp)

	s.statExpired.Add(1)
	s.world.PushEvent(event.EventSummonExpired, &event.SummonEndedPayload{
		Entity:    entity,
		AbilityID: sc.AbilityID,
		SummonID:  sc.SummonID,
	})
	s.teardown(entity)
}

// teardown is the shared end of both terminal paths: halt, fade, and a
// deferred destruction timer
func (s *SummonSystem) teardown(entity core.Entity) {
	if kin, ok := s.world.Components.Kinetic.GetComponent(entity); ok {
		kin.VelX, kin.VelY = 0, 0
		s.world.Components.Kinetic.SetComponent(entity, kin)
	}
	s.world.Components.Fade.SetComponent(entity, component.FadeComponent{
		Remaining: parameter.SummonFadeDuration,
		Total:     parameter.SummonFadeDuration,
	})
	s.world.PushEvent(event.EventTimerStart, &event.TimerStartPayload{
		Entity:   entity,
		Duration: parameter.SummonFadeDuration,
	})
}

// TrySecondaryEffect activates a summon's secondary ability if permitted:
// the summon must be alive and not expired, the ability must define a
// secondary, and either it was never used or its cooldown has elapsed.
// The first use is always permitted regardless of the cooldown value
func TrySecondaryEffect(w *engine.World, entity core.Entity) bool {
	sc, ok := w.Components.Summon.GetComponent(entity)
	if !ok || sc.Expired {
		return false
	}
	hp, ok := w.Components.Health.GetComponent(entity)
	if !ok || !hp.Alive {
		return false
	}

	ability := w.Resources.Content.Ability(sc.AbilityID)
	if !ability.HasSecondary() {
		return false
	}
	if sc.SecondaryUsed && sc.SecondaryCooldown > 0 {
		w.Resources.Status.Ints.Get("summon.secondary_on_cooldown").Add(1)
		return false
	}

	sc.SecondaryUsed = true
	sc.SecondaryCooldown = ability.SecondaryCooldown
	w.Components.Summon.SetComponent(entity, sc)

	switch ability.Secondary {
	case content.SecondaryAreaHeal:
		areaHeal(w, entity, ability.SecondaryRadius, ability.SecondaryPower)
	case content.SecondaryAreaNova:
		areaNova(w, entity, ability.SecondaryRadius, ability.SecondaryPower)
	}

	w.PushEvent(event.EventSecondaryUsed, &event.SecondaryUsedPayload{
		Entity:    entity,
		AbilityID: sc.AbilityID,
		Effect:    int(ability.Secondary),
	})
	return true
}

// areaHeal pulses a heal onto the player and every friendly summon in
// radius, plus a brief speed boost on each
func areaHeal(w *engine.World, source core.Entity, radius, power float64) {
	pos, ok := w.Components.Kinetic.GetComponent(source)
	if !ok {
		return
	}

	heal := func(t core.Entity) {
		tp, ok := w.Components.Kinetic.GetComponent(t)
		if !ok || !vmath.WithinRange(pos.X, pos.Y, tp.X, tp.Y, radius) {
			return
		}
		ApplyHeal(w, t, power)
		w.Components.Boost.SetComponent(t, component.BoostComponent{
			Remaining: 1500 * time.Millisecond,
			Factor:    1.25,
		})
	}

	heal(w.Resources.Player.Entity)
	for _, e := range w.Components.Summon.GetAllEntities() {
		heal(e)
	}
}

// areaNova damages every enemy in radius around the summon
func areaNova(w *engine.World, source core.Entity, radius, power float64) {
	pos, ok := w.Components.Kinetic.GetComponent(source)
	if !ok {
		return
	}

	for _, e := range w.Components.Enemy.GetAllEntities() {
		tp, ok := w.Components.Kinetic.GetComponent(e)
		if !ok || !vmath.WithinRange(pos.X, pos.Y, tp.X, tp.Y, radius) {
			continue
		}
		ApplyDamage(w, e, power, source)
	}
}
