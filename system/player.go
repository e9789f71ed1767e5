package system

import (
	"sync/atomic"

	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
	"github.com/hollowmere/cardbound/vmath"
)

// PlayerSystem resolves the player movement/dodge/cast state machine.
// State precedence per tick: Dead > Dodging > Casting > Moving > Idle.
// A dodge preempts an in-progress cast; a cast never preempts a dodge
type PlayerSystem struct {
	world *engine.World

	statDodges        *atomic.Int64
	statDodgeRejected *atomic.Int64

	enabled bool
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{
		world: world,
	}
	s.statDodges = world.Resources.Status.Ints.Get("player.dodges")
	s.statDodgeRejected = world.Resources.Status.Ints.Get("player.dodge_rejected")
	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.statDodges.Store(0)
	s.statDodgeRejected.Store(0)
	s.enabled = true
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoveInput,
		event.EventDodgeRequest,
		event.EventEntityDied,
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
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
	case event.EventMoveInput:
		if p, ok := ev.Payload.(*event.MoveInputPayload); ok {
			s.setMoveInput(p.X, p.Y)
		}

	case event.EventDodgeRequest:
		s.tryDodge()

	case event.EventEntityDied:
		if p, ok := ev.Payload.(*event.EntityDiedPayload); ok {
			if p.Entity == s.world.Resources.Player.Entity {
				s.onPlayerDeath()
			}
		}
	}
}

func (s *PlayerSystem) setMoveInput(x, y float64) {
	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok || pc.State == component.PlayerDead {
		return
	}

	if vmath.Magnitude(x, y) < parameter.InputDeadZone {
		x, y = 0, 0
	} else {
		x, y = vmath.Normalize2D(x, y)
	}

	pc.MoveX, pc.MoveY = x, y
	if x != 0 || y != 0 {
		pc.FacingX, pc.FacingY = x, y
	}
	s.world.Components.Player.SetComponent(player, pc)
}

// tryDodge starts a dodge burst. Rejected while already dodging, while the
// cooldown runs, or when dead. Direction is captured once at start: live
// input if any, else the last facing
func (s *PlayerSystem) tryDodge() {
	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok || pc.State == component.PlayerDead {
		return
	}
	if pc.State == component.PlayerDodging || pc.DodgeCooldown > 0 {
		s.statDodgeRejected.Add(1)
		return
	}

	dirX, dirY := pc.MoveX, pc.MoveY
	if dirX == 0 && dirY == 0 {
		dirX, dirY = pc.FacingX, pc.FacingY
	}

	pc.State = component.PlayerDodging
	pc.DodgeDirX, pc.DodgeDirY = dirX, dirY
	pc.DodgeRemaining = parameter.DodgeDuration
	pc.DodgeCooldown = parameter.DodgeCooldown
	pc.CastRemaining = 0 // dodge preempts an in-progress cast lock
	s.world.Components.Player.SetComponent(player, pc)

	// Untargetable for the burst; restored exactly at expiry
	if hp, ok := s.world.Components.Health.GetComponent(player); ok {
		hp.Targetable = false
		s.world.Components.Health.SetComponent(player, hp)
	}

	s.statDodges.Add(1)
	s.world.PushEvent(event.EventPlayerDodged, &event.PlayerDodgedPayload{
		DirX: dirX,
		DirY: dirY,
	})
}

func (s *PlayerSystem) onPlayerDeath() {
	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok {
		return
	}
	pc.State = component.PlayerDead
	pc.MoveX, pc.MoveY = 0, 0
	s.world.Components.Player.SetComponent(player, pc)

	x, y := 0.0, 0.0
	if kin, ok := s.world.Components.Kinetic.GetComponent(player); ok {
		x, y = kin.X, kin.Y
	}
	s.world.PushEvent(event.EventPlayerDied, &event.PlayerDiedPayload{X: x, Y: y})
}

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}

	player := s.world.Resources.Player.Entity
	pc, ok := s.world.Components.Player.GetComponent(player)
	if !ok {
		return
	}

	dt := s.world.Resources.Time.DeltaTime

	if pc.DodgeCooldown > 0 {
		pc.DodgeCooldown -= dt
		if pc.DodgeCooldown < 0 {
			pc.DodgeCooldown = 0
		}
	}

	switch pc.State {
	case component.PlayerDead:
		s.world.Components.Player.SetComponent(player, pc)
		return

	case component.PlayerDodging:
		pc.DodgeRemaining -= dt
		if pc.DodgeRemaining > 0 {
			s.setVelocity(pc.DodgeDirX*parameter.PlayerDodgeSpeed, pc.DodgeDirY*parameter.PlayerDodgeSpeed)
			break
		}
		// The burst ends in Idle; held input promotes to Moving on the
		// next tick, not this one
		pc.DodgeRemaining = 0
		pc.State = component.PlayerIdle
		if hp, ok := s.world.Components.Health.GetComponent(player); ok && hp.Alive {
			hp.Targetable = true
			s.world.Components.Health.SetComponent(player, hp)
		}
		s.setVelocity(0, 0)
		s.world.Components.Player.SetComponent(player, pc)
		return

	case component.PlayerCasting:
		pc.CastRemaining -= dt
		if pc.CastRemaining > 0 {
			s.setVelocity(0, 0)
			break
		}
		pc.CastRemaining = 0
		pc.State = component.PlayerIdle
		s.setVelocity(0, 0)
	}

	// Resolve movement for the states that allow it
	if pc.State == component.PlayerIdle || pc.State == component.PlayerMoving {
		if pc.MoveX != 0 || pc.MoveY != 0 {
			pc.State = component.PlayerMoving
			s.setVelocity(pc.MoveX*parameter.PlayerMoveSpeed, pc.MoveY*parameter.PlayerMoveSpeed)
		} else {
			pc.State = component.PlayerIdle
			s.setVelocity(0, 0)
		}
	}

	s.world.Components.Player.SetComponent(player, pc)
}

func (s *PlayerSystem) setVelocity(vx, vy float64) {
	player := s.world.Resources.Player.Entity
	if kin, ok := s.world.Components.Kinetic.GetComponent(player); ok {
		kin.VelX, kin.VelY = vx, vy
		s.world.Components.Kinetic.SetComponent(player, kin)
	}
}
