package system

import (
	"testing"

	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

func (f *fixture) moveInput(x, y float64) {
	f.world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: x, Y: y})
}

func (f *fixture) dodgeRequest() {
	f.world.PushEvent(event.EventDodgeRequest, nil)
}

func (f *fixture) playerComponent() component.PlayerComponent {
	pc, _ := f.world.Components.Player.GetComponent(f.player)
	return pc
}

func TestMoveInputDrivesVelocityAndState(t *testing.T) {
	f := newFixture()

	f.moveInput(1, 0)
	f.tick()

	pc := f.playerComponent()
	if pc.State != component.PlayerMoving {
		t.Fatalf("state = %v, want moving", pc.State)
	}
	kin, _ := f.world.Components.Kinetic.GetComponent(f.player)
	if kin.VelX != parameter.PlayerMoveSpeed || kin.VelY != 0 {
		t.Fatalf("velocity = (%v,%v), want (%v,0)", kin.VelX, kin.VelY, parameter.PlayerMoveSpeed)
	}

	f.moveInput(0, 0)
	f.tick()
	if pc = f.playerComponent(); pc.State != component.PlayerIdle {
		t.Fatalf("state after input release = %v, want idle", pc.State)
	}
}

func TestInputBelowDeadZoneIsIgnored(t *testing.T) {
	f := newFixture()

	f.moveInput(0.05, 0.05)
	f.tick()

	if pc := f.playerComponent(); pc.State != component.PlayerIdle {
		t.Fatalf("state = %v, want idle for sub-deadzone input", pc.State)
	}
}

func TestDodgeCapturesDirectionAtStart(t *testing.T) {
	f := newFixture()

	// Move upward, then dodge: the dodge snapshots (0,1)
	f.moveInput(0, 1)
	f.tick()
	f.dodgeRequest()
	f.tick()

	pc := f.playerComponent()
	if pc.State != component.PlayerDodging {
		t.Fatalf("state = %v, want dodging", pc.State)
	}
	if pc.DodgeDirX != 0 || pc.DodgeDirY != 1 {
		t.Fatalf("dodge dir = (%v,%v), want (0,1)", pc.DodgeDirX, pc.DodgeDirY)
	}

	// Input changes mid-dodge must not steer the burst
	f.moveInput(1, 0)
	f.tick()

	kin, _ := f.world.Components.Kinetic.GetComponent(f.player)
	if kin.VelX != 0 || kin.VelY != parameter.PlayerDodgeSpeed {
		t.Fatalf("mid-dodge velocity = (%v,%v), want (0,%v)", kin.VelX, kin.VelY, parameter.PlayerDodgeSpeed)
	}

	// After the burst the held (1,0) input resumes as normal movement
	f.tickFor(parameter.DodgeDuration)
	pc = f.playerComponent()
	if pc.State != component.PlayerMoving {
		t.Fatalf("state after dodge = %v, want moving", pc.State)
	}
	kin, _ = f.world.Components.Kinetic.GetComponent(f.player)
	if kin.VelX != parameter.PlayerMoveSpeed || kin.VelY != 0 {
		t.Fatalf("post-dodge velocity = (%v,%v), want (%v,0)", kin.VelX, kin.VelY, parameter.PlayerMoveSpeed)
	}
}

func TestDodgeWithoutInputUsesFacing(t *testing.T) {
	f := newFixture()

	// Establish facing left, release input, then dodge
	f.moveInput(-1, 0)
	f.tick()
	f.moveInput(0, 0)
	f.tick()
	f.dodgeRequest()
	f.tick()

	pc := f.playerComponent()
	if pc.DodgeDirX != -1 || pc.DodgeDirY != 0 {
		t.Fatalf("dodge dir = (%v,%v), want facing (-1,0)", pc.DodgeDirX, pc.DodgeDirY)
	}
}

func TestDodgeCooldownUnderInputSpam(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventPlayerDodged)

	f.moveInput(1, 0)
	f.tick()

	// Spam a dodge request every tick for two seconds
	for i := 0; i < 100; i++ {
		f.dodgeRequest()
		f.tick()
	}
	f.tick() // flush the last dodge event

	// Cooldown 900ms on a 20ms tick admits a dodge every 45 ticks
	if n := rec.count(event.EventPlayerDodged); n != 3 {
		t.Fatalf("dodges under spam = %d, want 3", n)
	}
}

func TestDodgeRestoresTargetabilityExactlyAtExpiry(t *testing.T) {
	f := newFixture()

	f.moveInput(1, 0)
	f.tick()
	f.dodgeRequest()
	f.tick()

	hp, _ := f.world.Components.Health.GetComponent(f.player)
	if hp.CanBeTargeted() {
		t.Fatal("player targetable during dodge burst")
	}

	f.tickFor(parameter.DodgeDuration)
	hp, _ = f.world.Components.Health.GetComponent(f.player)
	if !hp.CanBeTargeted() {
		t.Fatal("player not targetable after dodge burst")
	}
}

func TestDodgePreemptsCastLock(t *testing.T) {
	f := newFixture()

	f.castRequest(0)
	f.tick()
	if pc := f.playerComponent(); pc.State != component.PlayerCasting {
		t.Fatalf("state after cast = %v, want casting", pc.State)
	}

	f.dodgeRequest()
	f.tick()

	pc := f.playerComponent()
	if pc.State != component.PlayerDodging {
		t.Fatalf("state = %v, want dodge to preempt cast", pc.State)
	}
	if pc.CastRemaining != 0 {
		t.Fatalf("cast lock remaining = %v, want cleared", pc.CastRemaining)
	}
}

func TestPlayerDeathIsTerminalForInput(t *testing.T) {
	f := newFixture()
	rec := f.record(event.EventPlayerDied)

	Kill(f.world, f.player, core.NoEntity)
	f.tick() // dispatch EntityDied
	f.tick() // dispatch PlayerDied

	if pc := f.playerComponent(); pc.State != component.PlayerDead {
		t.Fatalf("state = %v, want dead", pc.State)
	}
	if n := rec.count(event.EventPlayerDied); n != 1 {
		t.Fatalf("player death events = %d, want 1", n)
	}

	f.moveInput(1, 0)
	f.dodgeRequest()
	f.tick()

	pc := f.playerComponent()
	if pc.State != component.PlayerDead || pc.MoveX != 0 {
		t.Fatal("dead player accepted input")
	}
}
