package system

import (
	"sync/atomic"

	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/content"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// cardSlot is the per-slot cast bookkeeping. The active reference is a
// weak pair (entity id, summon id) re-validated on use, so a recycled
// slot position can never be confused with a stale summon
type cardSlot struct {
	abilityID string
	charges   int

	active   core.Entity
	activeID uint64
}

// CastSystem coordinates card activation: charge accounting, energy
// gating, summon creation and the one-active-summon-per-slot rule.
// While a slot's summon is alive, activating the slot routes to the
// summon's secondary ability instead of a new primary cast
type CastSystem struct {
	world *engine.World

	slots        [parameter.CardSlotCount]cardSlot
	nextSummonID uint64

	statCasts    *atomic.Int64
	statRejected *atomic.Int64

	enabled bool
}

func NewCastSystem(world *engine.World) *CastSystem {
	s := &CastSystem{
		world: world,
	}
	s.statCasts = world.Resources.Status.Ints.Get("cast.casts")
	s.statRejected = world.Resources.Status.Ints.Get("cast.rejected")
	s.Init()
	return s
}

// Init loads the deck from the content service, one ability per slot in
// registration order, with every slot at full charges
func (s *CastSystem) Init() {
	s.nextSummonID = 1
	s.statCasts.Store(0)
	s.statRejected.Store(0)
	s.enabled = true

	ids := s.world.Resources.Content.AbilityIDs()
	for i := range s.slots {
		s.slots[i] = cardSlot{active: core.NoEntity}
		if i < len(ids) {
			s.slots[i].abilityID = ids[i]
			s.slots[i].charges = s.world.Resources.Content.Ability(ids[i]).MaxCharges
		}
	}
}

func (s *CastSystem) Name() string {
	return "cast"
}

func (s *CastSystem) Priority() int {
	return parameter.PriorityCast
}

func (s *CastSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCastRequest,
		event.EventSummonExpired,
		event.EventSummonDied,
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *CastSystem) HandleEvent(ev event.GameEvent) {
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
	case event.EventCastRequest:
		if p, ok := ev.Payload.(*event.CastRequestPayload); ok {
			s.activate(p.Slot)
		}

	case event.EventSummonExpired, event.EventSummonDied:
		if p, ok := ev.Payload.(*event.SummonEndedPayload); ok {
			s.clearActive(p.SummonID)
		}
	}
}

// Update has no per-tick work; activation is request-driven
func (s *CastSystem) Update() {}

// Charges reports the remaining charges for a slot; -1 for a bad slot
func (s *CastSystem) Charges(slot int) int {
	if slot < 0 || slot >= len(s.slots) {
		return -1
	}
	return s.slots[slot].charges
}

// SlotAbility reports the ability bound to a slot
func (s *CastSystem) SlotAbility(slot int) string {
	if slot < 0 || slot >= len(s.slots) {
		return ""
	}
	return s.slots[slot].abilityID
}

func (s *CastSystem) activate(slot int) {
	if slot < 0 || slot >= len(s.slots) || s.slots[slot].abilityID == "" {
		s.reject(slot, event.RejectBadSlot)
		return
	}

	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok || pc.State == component.PlayerDead {
		s.reject(slot, event.RejectDead)
		return
	}

	// An active summon owns the slot: the keypress becomes its secondary
	// activation, and a primary cast never fires alongside it
	if s.activeAlive(slot) {
		if !TrySecondaryEffect(s.world, s.slots[slot].active) {
			s.reject(slot, event.RejectSummonActive)
		}
		return
	}

	sl := &s.slots[slot]
	if sl.charges <= 0 {
		s.reject(slot, event.RejectNoCharges)
		return
	}

	ability := s.world.Resources.Content.Ability(sl.abilityID)
	if !TryConsumeEnergy(s.world, player, ability.EnergyCost) {
		s.reject(slot, event.RejectNoEnergy)
		return
	}

	summon := s.spawnSummon(player, ability)
	sl.charges--
	sl.active = summon
	sl.activeID = s.nextSummonID - 1

	// Brief cast lock on the player; a dodge may preempt it
	if pc.State != component.PlayerDodging {
		pc.State = component.PlayerCasting
		pc.CastRemaining = parameter.CastLockDuration
		s.world.Components.Player.SetComponent(player, pc)
	}

	s.statCasts.Add(1)
	s.world.PushEvent(event.EventCardCast, &event.CardCastPayload{
		Slot:        slot,
		AbilityID:   sl.abilityID,
		ChargesLeft: sl.charges,
	})
}

// spawnSummon creates the summon entity next to its owner and assigns the
// next monotonic summon id
func (s *CastSystem) spawnSummon(owner core.Entity, ability *content.AbilityDef) core.Entity {
	x, y := 0.0, 0.0
	if kin, ok := s.world.Components.Kinetic.GetComponent(owner); ok {
		x, y = kin.X+parameter.SummonSpawnOffset, kin.Y
	}

	e := s.world.CreateEntity()
	id := s.nextSummonID
	s.nextSummonID++

	s.world.Components.Health.SetComponent(e, component.NewHealth(ability.SummonHealth))
	s.world.Components.Kind.SetComponent(e, component.KindComponent{Kind: core.KindSummon})
	s.world.Components.Kinetic.SetComponent(e, component.KineticComponent{X: x, Y: y})
	s.world.Components.Summon.SetComponent(e, component.SummonComponent{
		Owner:     owner,
		AbilityID: ability.ID,
		SummonID:  id,
		Lifetime:  ability.Lifetime,
	})

	s.world.PushEvent(event.EventEntitySpawned, &event.EntitySpawnedPayload{Entity: e, Kind: core.KindSummon})
	s.world.PushEvent(event.EventSummonCreated, &event.SummonCreatedPayload{
		Entity:    e,
		Owner:     owner,
		AbilityID: ability.ID,
		SummonID:  id,
	})
	return e
}

func (s *CastSystem) reject(slot int, reason event.CastRejectReason) {
	s.statRejected.Add(1)
	s.world.PushEvent(event.EventCastRejected, &event.CastRejectedPayload{
		Slot:   slot,
		Reason: reason,
	})
}

// activeAlive re-validates a slot's weak summon reference
func (s *CastSystem) activeAlive(slot int) bool {
	sl := &s.slots[slot]
	if sl.active == core.NoEntity {
		return false
	}
	sc, ok := s.world.Components.Summon.GetComponent(sl.active)
	if !ok || sc.SummonID != sl.activeID || sc.Expired {
		sl.active = core.NoEntity
		return false
	}
	hp, ok := s.world.Components.Health.GetComponent(sl.active)
	if !ok || !hp.Alive {
		sl.active = core.NoEntity
		return false
	}
	return true
}

func (s *CastSystem) clearActive(summonID uint64) {
	for i := range s.slots {
		if s.slots[i].activeID == summonID && s.slots[i].active != core.NoEntity {
			s.slots[i].active = core.NoEntity
		}
	}
}
