package system

import (
	"testing"

	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/event"
)

func TestDamageSequenceAndSingleDeath(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventEntityDied)

	enemy := SpawnEnemy(f.world, "stalker", 80, 30)
	f.tick()

	ApplyDamage(f.world, enemy, 10, core.NoEntity)
	if got := f.health(enemy); got != 20 {
		t.Fatalf("health after 10 damage = %v, want 20", got)
	}

	ApplyDamage(f.world, enemy, 25, core.NoEntity)
	if got := f.health(enemy); got != 0 {
		t.Fatalf("health after lethal damage = %v, want 0", got)
	}
	if f.alive(enemy) {
		t.Fatal("entity still alive after lethal damage")
	}

	// Further mutation on the dead entity is a no-op and produces no
	// second death
	ApplyDamage(f.world, enemy, 50, core.NoEntity)
	ApplyHeal(f.world, enemy, 50)
	Kill(f.world, enemy, core.NoEntity)
	f.tick()
	f.tick()

	if got := f.health(enemy); got != 0 {
		t.Fatalf("dead entity health = %v, want 0", got)
	}
	if n := rec.count(event.EventEntityDied); n != 1 {
		t.Fatalf("death events = %d, want exactly 1", n)
	}
}

func TestNegativeAmountsClampToZero(t *testing.T) {
	f := newFixture()

	enemy := SpawnEnemy(f.world, "stalker", 80, 30)
	f.tick()

	ApplyDamage(f.world, enemy, -5, core.NoEntity)
	if got := f.health(enemy); got != 30 {
		t.Fatalf("health after negative damage = %v, want 30", got)
	}

	ApplyDamage(f.world, enemy, 10, core.NoEntity)
	ApplyHeal(f.world, enemy, -5)
	if got := f.health(enemy); got != 20 {
		t.Fatalf("health after negative heal = %v, want 20", got)
	}
}

func TestHealClampsToMax(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventHealReceived)

	enemy := SpawnEnemy(f.world, "stalker", 80, 30)
	f.tick()

	ApplyDamage(f.world, enemy, 5, core.NoEntity)
	ApplyHeal(f.world, enemy, 100)
	f.tick()

	if got := f.health(enemy); got != 30 {
		t.Fatalf("health after overheal = %v, want clamped 30", got)
	}

	evs := rec.seen
	if len(evs) != 1 {
		t.Fatalf("heal events = %d, want 1", len(evs))
	}
	if p := evs[0].Payload.(*event.HealReceivedPayload); p.Amount != 5 {
		t.Fatalf("heal event amount = %v, want actual delta 5", p.Amount)
	}
}

func TestImmortalSuppressesAllMutation(t *testing.T) {
	f := newFixture()

	enemy := SpawnEnemy(f.world, "stalker", 80, 30)
	hp, _ := f.world.Components.Health.GetComponent(enemy)
	hp.Current = 15
	hp.Immortal = true
	f.world.Components.Health.SetComponent(enemy, hp)

	ApplyDamage(f.world, enemy, 10, core.NoEntity)
	ApplyHeal(f.world, enemy, 10)

	if got := f.health(enemy); got != 15 {
		t.Fatalf("immortal health = %v, want unchanged 15", got)
	}
}

func TestDamageRequestEventDrivesThePipeline(t *testing.T) {
	f := newFixture()

	enemy := SpawnEnemy(f.world, "stalker", 80, 30)
	f.tick()

	f.world.PushEvent(event.EventDamageRequest, &event.DamageRequestPayload{
		Target: enemy,
		Amount: 12,
		Source: core.NoEntity,
	})
	f.tick()

	if got := f.health(enemy); got != 18 {
		t.Fatalf("health after request event = %v, want 18", got)
	}
}

func TestDeathHaltsMotionAndTargeting(t *testing.T) {
	f := newFixture()

	enemy := SpawnEnemy(f.world, "stalker", 80, 30)
	kin, _ := f.world.Components.Kinetic.GetComponent(enemy)
	kin.VelX, kin.VelY = 5, 5
	f.world.Components.Kinetic.SetComponent(enemy, kin)

	Kill(f.world, enemy, core.NoEntity)

	kin, _ = f.world.Components.Kinetic.GetComponent(enemy)
	if kin.VelX != 0 || kin.VelY != 0 {
		t.Fatalf("velocity after death = (%v,%v), want zero", kin.VelX, kin.VelY)
	}
	hp, _ := f.world.Components.Health.GetComponent(enemy)
	if hp.CanBeTargeted() {
		t.Fatal("dead entity still targetable")
	}
}
