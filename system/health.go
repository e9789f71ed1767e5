package system

import (
	"sync/atomic"

	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// ApplyDamage runs the shared damage pipeline against a target
//
// No-op when the target is missing, dead, or immortal. Negative amounts
// clamp to zero. Mutation and its event publication happen within the
// current tick, so callers never observe stale health between them.
// Reaching zero health transitions to death
func ApplyDamage(w *engine.World, target core.Entity, amount float64, source core.Entity) {
	hp, ok := w.Components.Health.GetComponent(target)
	if !ok || !hp.Alive || hp.Immortal {
		return
	}
	if amount < 0 {
		amount = 0
	}

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	w.Components.Health.SetComponent(target, hp)

	// Transient hit feedback; the renderer consumes the flash
	w.Components.Flash.SetComponent(target, component.FlashComponent{
		Remaining: parameter.HitFlashDuration,
	})

	w.PushEvent(event.EventHealthChanged, &event.HealthChangedPayload{
		Entity:  target,
		Current: hp.Current,
		Max:     hp.Max,
	})
	w.PushEvent(event.EventDamageReceived, &event.DamageReceivedPayload{
		Entity: target,
		Amount: amount,
		Source: source,
	})
	w.Resources.Status.Floats.Get("health.damage_applied").Add(amount)

	if hp.Current == 0 {
		Kill(w, target, source)
	}
}

// ApplyHeal runs the shared heal pipeline against a target
//
// No-op when the target is missing, dead, or immortal. Negative amounts
// clamp to zero. Events report the actual delta after clamping to Max
func ApplyHeal(w *engine.World, target core.Entity, amount float64) {
	hp, ok := w.Components.Health.GetComponent(target)
	if !ok || !hp.Alive || hp.Immortal {
		return
	}
	if amount < 0 {
		amount = 0
	}

	applied := amount
	if hp.Current+applied > hp.Max {
		applied = hp.Max - hp.Current
	}
	if applied == 0 {
		return
	}
	hp.Current += applied
	w.Components.Health.SetComponent(target, hp)

	w.PushEvent(event.EventHealthChanged, &event.HealthChangedPayload{
		Entity:  target,
		Current: hp.Current,
		Max:     hp.Max,
	})
	w.PushEvent(event.EventHealReceived, &event.HealReceivedPayload{
		Entity: target,
		Amount: applied,
	})
}

// Kill transitions an entity to death: terminal, idempotent, exactly one
// EntityDied event ever. Halts motion and disables targeting; kind-specific
// teardown runs in the kind systems subscribed to EntityDied
func Kill(w *engine.World, target core.Entity, source core.Entity) {
	hp, ok := w.Components.Health.GetComponent(target)
	if !ok || !hp.Alive {
		return
	}
	hp.Alive = false
	hp.Targetable = false
	w.Components.Health.SetComponent(target, hp)

	if kin, ok := w.Components.Kinetic.GetComponent(target); ok {
		kin.VelX, kin.VelY = 0, 0
		w.Components.Kinetic.SetComponent(target, kin)
	}

	kind := core.KindUnknown
	if kc, ok := w.Components.Kind.GetComponent(target); ok {
		kind = kc.Kind
	}

	w.PushEvent(event.EventEntityDied, &event.EntityDiedPayload{
		Entity: target,
		Kind:   kind,
		Source: source,
	})
	w.Resources.Status.Ints.Get("health.deaths").Add(1)
}

// HealthSystem is the event intake for the damage pipeline: sources outside
// the system package reach it through damage/heal/kill request events
type HealthSystem struct {
	world *engine.World

	statRequests *atomic.Int64

	enabled bool
}

// NewHealthSystem creates the pipeline intake system
func NewHealthSystem(world *engine.World) engine.System {
	s := &HealthSystem{
		world: world,
	}
	s.statRequests = world.Resources.Status.Ints.Get("health.requests")
	s.Init()
	return s
}

// Init resets session state
func (s *HealthSystem) Init() {
	s.statRequests.Store(0)
	s.enabled = true
}

// Name returns the system's name
func (s *HealthSystem) Name() string {
	return "health"
}

func (s *HealthSystem) Priority() int {
	return parameter.PriorityHealth
}

func (s *HealthSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDamageRequest,
		event.EventHealRequest,
		event.EventKillRequest,
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *HealthSystem) HandleEvent(ev event.GameEvent) {
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

	switch ev.Type {
	case event.EventDamageRequest:
		if p, ok := ev.Payload.(*event.DamageRequestPayload); ok {
			s.statRequests.Add(1)
			ApplyDamage(s.world, p.Target, p.Amount, p.Source)
		}

	case event.EventHealRequest:
		if p, ok := ev.Payload.(*event.HealRequestPayload); ok {
			s.statRequests.Add(1)
			ApplyHeal(s.world, p.Target, p.Amount)
		}

	case event.EventKillRequest:
		if p, ok := ev.Payload.(*event.KillRequestPayload); ok {
			Kill(s.world, p.Target, p.Source)
		}
	}
}

// Update has no per-tick work; the pipeline is request-driven
func (s *HealthSystem) Update() {}
