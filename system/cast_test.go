package system

import (
	"testing"

	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/event"
)

func (f *fixture) castRequest(slot int) {
	f.world.PushEvent(event.EventCastRequest, &event.CastRequestPayload{Slot: slot})
}

// summonOf finds the live summon entity owned by the player for an ability
func (f *fixture) summonOf(abilityID string) core.Entity {
	for _, e := range f.world.Components.Summon.GetAllEntities() {
		sc, _ := f.world.Components.Summon.GetComponent(e)
		hp, _ := f.world.Components.Health.GetComponent(e)
		if sc.AbilityID == abilityID && !sc.Expired && hp.Alive {
			return e
		}
	}
	return core.NoEntity
}

func TestCastSpawnsSummonAndDecrementsCharges(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventCardCast, event.EventSummonCreated)

	if got := f.cast.Charges(0); got != 3 {
		t.Fatalf("initial charges = %d, want 3", got)
	}

	f.castRequest(0)
	f.tick()
	f.tick()

	if got := f.cast.Charges(0); got != 2 {
		t.Fatalf("charges after cast = %d, want 2", got)
	}
	if n := rec.count(event.EventSummonCreated); n != 1 {
		t.Fatalf("summon created events = %d, want 1", n)
	}
	if e := f.summonOf("ember-sprite"); e == core.NoEntity {
		t.Fatal("no live summon after cast")
	}

	casts := rec.seen
	for _, ev := range casts {
		if p, ok := ev.Payload.(*event.CardCastPayload); ok {
			if p.ChargesLeft != 2 {
				t.Fatalf("cast event charges = %d, want 2", p.ChargesLeft)
			}
		}
	}
}

func TestCastConsumesEnergy(t *testing.T) {
	f := newFixture()

	before := f.energy()
	f.castRequest(0) // ember-sprite costs 20
	f.tick()

	spent := before - f.energy()
	if spent < 19.5 || spent > 20.5 {
		t.Fatalf("energy spent = %v, want 20 (modulo one tick of regen)", spent)
	}
}

func TestCastRejectedWithoutEnergy(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventCastRejected)

	f.setEnergy(5)
	f.castRequest(0)
	f.tick()
	f.tick()

	if got := f.cast.Charges(0); got != 3 {
		t.Fatalf("charges after rejected cast = %d, want untouched 3", got)
	}
	if len(rec.seen) != 1 {
		t.Fatalf("reject events = %d, want 1", len(rec.seen))
	}
	if p := rec.seen[0].Payload.(*event.CastRejectedPayload); p.Reason != event.RejectNoEnergy {
		t.Fatalf("reject reason = %v, want no-energy", p.Reason)
	}
}

func TestActiveSummonRoutesSlotToSecondary(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventSecondaryUsed, event.EventSummonCreated, event.EventCastRejected)

	f.castRequest(0)
	f.tick()
	f.tick()

	// Slot occupied: the next activation becomes the summon's secondary,
	// not a second summon
	f.castRequest(0)
	f.tick()
	f.tick()

	if n := rec.count(event.EventSummonCreated); n != 1 {
		t.Fatalf("summons created = %d, want 1 while slot occupied", n)
	}
	if n := rec.count(event.EventSecondaryUsed); n != 1 {
		t.Fatalf("secondary activations = %d, want 1", n)
	}
	if got := f.cast.Charges(0); got != 2 {
		t.Fatalf("charges = %d, want 2 (secondary costs no charge)", got)
	}
}

func TestOccupiedSlotWithSecondaryOnCooldownIsRejected(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventCastRejected)

	f.castRequest(0)
	f.tick()
	f.tick()

	// First activation fires the secondary, second hits its cooldown
	f.castRequest(0)
	f.tick()
	f.castRequest(0)
	f.tick()
	f.tick()

	if len(rec.seen) != 1 {
		t.Fatalf("reject events = %d, want 1", len(rec.seen))
	}
	if p := rec.seen[0].Payload.(*event.CastRejectedPayload); p.Reason != event.RejectSummonActive {
		t.Fatalf("reject reason = %v, want summon-active", p.Reason)
	}
}

func TestZeroChargesRejectsAndNeverGoesNegative(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventCastRejected)

	// grave-bulwark in slot 1 has a single charge and no secondary
	f.setEnergy(100)
	f.castRequest(1)
	f.tick()
	f.tick()
	if got := f.cast.Charges(1); got != 0 {
		t.Fatalf("charges = %d, want 0", got)
	}

	bulwark := f.summonOf("grave-bulwark")
	if bulwark == core.NoEntity {
		t.Fatal("bulwark not spawned")
	}

	// Occupied slot with no secondary rejects
	f.setEnergy(100)
	f.castRequest(1)
	f.tick()
	f.tick()
	if n := rec.count(event.EventCastRejected); n != 1 {
		t.Fatalf("reject events = %d, want 1", n)
	}

	// Kill the summon, free the slot, and exhaust the charges
	Kill(f.world, bulwark, core.NoEntity)
	f.tick()
	f.tick()

	f.setEnergy(100)
	f.castRequest(1)
	f.tick()
	f.tick()

	if got := f.cast.Charges(1); got != 0 {
		t.Fatalf("charges = %d, want 0 and never negative", got)
	}
	rejects := rec.seen
	last := rejects[len(rejects)-1].Payload.(*event.CastRejectedPayload)
	if last.Reason != event.RejectNoCharges {
		t.Fatalf("reject reason = %v, want no-charges", last.Reason)
	}
}

func TestThreeChargeSlotLifecycle(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventSummonCreated, event.EventCastRejected)

	// Burn all three ember-sprite charges, killing each summon to free
	// the slot between casts
	for i := 0; i < 3; i++ {
		f.setEnergy(100)
		f.castRequest(0)
		f.tick()
		f.tick()

		e := f.summonOf("ember-sprite")
		if e == core.NoEntity {
			t.Fatalf("cast %d spawned no summon", i+1)
		}
		Kill(f.world, e, core.NoEntity)
		f.tick()
		f.tick()
	}

	if n := rec.count(event.EventSummonCreated); n != 3 {
		t.Fatalf("summons created = %d, want 3", n)
	}
	if got := f.cast.Charges(0); got != 0 {
		t.Fatalf("charges = %d, want 0", got)
	}

	// Fourth attempt rejects for charges
	f.setEnergy(100)
	f.castRequest(0)
	f.tick()
	f.tick()

	if n := rec.count(event.EventCastRejected); n != 1 {
		t.Fatalf("reject events = %d, want 1", n)
	}
	if got := f.cast.Charges(0); got != 0 {
		t.Fatalf("charges = %d, want 0 after rejected attempt", got)
	}
}

func TestBadSlotRejected(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventCastRejected)

	f.castRequest(17)
	f.tick()
	f.tick()

	if len(rec.seen) != 1 {
		t.Fatalf("reject events = %d, want 1", len(rec.seen))
	}
	if p := rec.seen[0].Payload.(*event.CastRejectedPayload); p.Reason != event.RejectBadSlot {
		t.Fatalf("reject reason = %v, want bad-slot", p.Reason)
	}
}

func TestDeadPlayerCannotCast(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventCastRejected)

	Kill(f.world, f.player, core.NoEntity)
	f.tick()
	f.tick()

	f.castRequest(0)
	f.tick()
	f.tick()

	if len(rec.seen) != 1 {
		t.Fatalf("reject events = %d, want 1", len(rec.seen))
	}
	if p := rec.seen[0].Payload.(*event.CastRejectedPayload); p.Reason != event.RejectDead {
		t.Fatalf("reject reason = %v, want dead", p.Reason)
	}
}
