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

// EnemySystem runs the per-enemy targeting and attack state machine.
// Decisions (target pick, aggro, state transitions) run on the slow AI
// cadence; steering, cooldowns and attack execution run every tick so an
// executed attack never slips past its window
type EnemySystem struct {
	world *engine.World

	// aiAccum accumulates tick time toward the next decision pass
	aiAccum time.Duration

	statAttacks *atomic.Int64
	statKills   *atomic.Int64

	enabled bool
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{
		world: world,
	}
	s.statAttacks = world.Resources.Status.Ints.Get("enemy.attacks")
	s.statKills = world.Resources.Status.Ints.Get("enemy.kills")
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.aiAccum = 0
	s.statAttacks.Store(0)
	s.statKills.Store(0)
	s.enabled = true
}

func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDamageReceived,
		event.EventEntityDied,
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
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
	case event.EventDamageReceived:
		if p, ok := ev.Payload.(*event.DamageReceivedPayload); ok {
			s.onStruck(p.Entity, p.Source)
		}

	case event.EventEntityDied:
		if p, ok := ev.Payload.(*event.EntityDiedPayload); ok {
			if p.Kind == core.KindEnemy {
				s.onEnemyDeath(p.Entity, p.Source)
			}
		}
	}
}

// onStruck records the attacker and, for the struck-retaliation behaviors,
// forces aggro onto the source immediately rather than waiting for the
// next decision pass
func (s *EnemySystem) onStruck(entity, source core.Entity) {
	ec, ok := s.world.Components.Enemy.GetComponent(entity)
	if !ok || source == core.NoEntity {
		return
	}

	ec.LastAttacker = source
	switch ec.Profile.Behavior {
	case content.BehaviorDefensive, content.BehaviorSwarm:
		if s.validTarget(source) {
			ec.Aggro = true
			ec.Target = source
			if ec.State == component.EnemyIdle {
				ec.State = component.EnemyFollowing
			}
		}
	}
	s.world.Components.Enemy.SetComponent(entity, ec)
}

// onEnemyDeath tears down the AI and schedules the corpse: rewards are
// published once, the body fades and a grace timer defers destruction
func (s *EnemySystem) onEnemyDeath(entity, source core.Entity) {
	ec, ok := s.world.Components.Enemy.GetComponent(entity)
	if !ok {
		return
	}
	profile := ec.Profile
	s.world.Components.Enemy.RemoveEntity(entity)

	s.statKills.Add(1)
	s.world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		Entity:     entity,
		Experience: profile.Experience,
		Energy:     profile.EnergyYield,
	})

	s.world.Components.Fade.SetComponent(entity, component.FadeComponent{
		Remaining: parameter.DeathGraceDelay,
		Total:     parameter.DeathGraceDelay,
	})
	s.world.PushEvent(event.EventTimerStart, &event.TimerStartPayload{
		Entity:   entity,
		Duration: parameter.DeathGraceDelay,
	})
}

func (s *EnemySystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	s.aiAccum += dt
	decide := false
	if s.aiAccum >= s.world.Resources.Config.AIInterval {
		s.aiAccum = 0
		decide = true
	}

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		ec, ok := s.world.Components.Enemy.GetComponent(e)
		if !ok {
			continue
		}
		if hp, ok := s.world.Components.Health.GetComponent(e); !ok || !hp.Alive {
			continue
		}

		if ec.AttackCooldown > 0 {
			ec.AttackCooldown -= dt
			if ec.AttackCooldown < 0 {
				ec.AttackCooldown = 0
			}
		}

		if decide {
			s.decide(e, &ec)
		}

		s.steer(e, &ec)
		s.tryAttack(e, &ec)

		s.world.Components.Enemy.SetComponent(e, ec)
	}
}

// decide runs one slow-cadence decision pass: validate the current target,
// then apply the behavior policy for acquisition and state transitions
func (s *EnemySystem) decide(e core.Entity, ec *component.EnemyComponent) {
	pos, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	// Drop a target that died, vanished, or slipped out of the leash
	if ec.Target != core.NoEntity {
		if !s.validTarget(ec.Target) {
			s.dropTarget(ec)
		} else if tp, ok := s.world.Components.Kinetic.GetComponent(ec.Target); ok {
			if !vmath.WithinRange(pos.X, pos.Y, tp.X, tp.Y, ec.Profile.AggroDropRange) {
				s.dropTarget(ec)
			}
		}
	}

	switch ec.Profile.Behavior {
	case content.BehaviorAggressive:
		s.decideAggressive(pos, ec)
	case content.BehaviorDefensive:
		// Acquisition happens in onStruck; here only range states update
	case content.BehaviorPassive:
		ec.Target = core.NoEntity
		ec.State = component.EnemyIdle
		return
	case content.BehaviorGuardian:
		s.decideGuardian(pos, ec)
	case content.BehaviorSwarm:
		s.decideSwarm(e, pos, ec)
	}

	s.updateRangeState(pos, ec)
}

// decideAggressive acquires the player on sight within detection range
func (s *EnemySystem) decideAggressive(pos component.KineticComponent, ec *component.EnemyComponent) {
	if ec.Target != core.NoEntity {
		return
	}
	player := s.world.Resources.Player.Entity
	if !s.validTarget(player) {
		return
	}
	if pp, ok := s.world.Components.Kinetic.GetComponent(player); ok {
		if vmath.WithinRange(pos.X, pos.Y, pp.X, pp.Y, ec.Profile.DetectionRange) {
			ec.Aggro = true
			ec.Target = player
		}
	}
}

// decideGuardian engages any hostile inside detection range but never
// pursues: aggro holds only while the target stays inside the zone
func (s *EnemySystem) decideGuardian(pos component.KineticComponent, ec *component.EnemyComponent) {
	if ec.Target != core.NoEntity {
		if tp, ok := s.world.Components.Kinetic.GetComponent(ec.Target); ok {
			if !vmath.WithinRange(pos.X, pos.Y, tp.X, tp.Y, ec.Profile.DetectionRange) {
				s.dropTarget(ec)
			}
		}
		return
	}

	if t := s.nearestHostile(pos, ec.Profile.DetectionRange); t != core.NoEntity {
		ec.Aggro = true
		ec.Target = t
	}
}

// decideSwarm joins the fight of any aggroed same-kind ally in detection
// range; otherwise behaves like a struck-retaliator (onStruck handles that)
func (s *EnemySystem) decideSwarm(self core.Entity, pos component.KineticComponent, ec *component.EnemyComponent) {
	if ec.Target != core.NoEntity {
		return
	}

	for _, other := range s.world.Components.Enemy.GetAllEntities() {
		if other == self {
			continue
		}
		oc, ok := s.world.Components.Enemy.GetComponent(other)
		if !ok || !oc.Aggro || oc.Target == core.NoEntity {
			continue
		}
		if oc.Profile.Kind != ec.Profile.Kind {
			continue
		}
		op, ok := s.world.Components.Kinetic.GetComponent(other)
		if !ok || !vmath.WithinRange(pos.X, pos.Y, op.X, op.Y, ec.Profile.DetectionRange) {
			continue
		}
		if !s.validTarget(oc.Target) {
			continue
		}
		ec.Aggro = true
		ec.Target = oc.Target
		return
	}
}

// updateRangeState transitions Following/Attacking from target distance
func (s *EnemySystem) updateRangeState(pos component.KineticComponent, ec *component.EnemyComponent) {
	if ec.Target == core.NoEntity {
		ec.State = component.EnemyIdle
		return
	}
	tp, ok := s.world.Components.Kinetic.GetComponent(ec.Target)
	if !ok {
		s.dropTarget(ec)
		return
	}
	if vmath.WithinRange(pos.X, pos.Y, tp.X, tp.Y, ec.Profile.AttackRange) {
		ec.State = component.EnemyAttacking
	} else {
		ec.State = component.EnemyFollowing
	}
}

// steer writes velocity each tick: toward the target while following,
// holding position while attacking or idle. Guardians never pursue
func (s *EnemySystem) steer(e core.Entity, ec *component.EnemyComponent) {
	kin, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	vx, vy := 0.0, 0.0
	if ec.State == component.EnemyFollowing && ec.Profile.Behavior != content.BehaviorGuardian {
		if tp, ok := s.world.Components.Kinetic.GetComponent(ec.Target); ok {
			dx, dy := vmath.Normalize2D(tp.X-kin.X, tp.Y-kin.Y)
			vx, vy = dx*ec.Profile.MoveSpeed, dy*ec.Profile.MoveSpeed
		}
	}

	if kin.VelX != vx || kin.VelY != vy {
		kin.VelX, kin.VelY = vx, vy
		s.world.Components.Kinetic.SetComponent(e, kin)
	}
}

// tryAttack executes an attack when attacking, in range and off cooldown
// The cooldown resets only on an executed attack
func (s *EnemySystem) tryAttack(e core.Entity, ec *component.EnemyComponent) {
	if ec.State != component.EnemyAttacking || ec.AttackCooldown > 0 {
		return
	}
	if !s.validTarget(ec.Target) {
		return
	}

	pos, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}
	tp, ok := s.world.Components.Kinetic.GetComponent(ec.Target)
	if !ok || !vmath.WithinRange(pos.X, pos.Y, tp.X, tp.Y, ec.Profile.AttackRange) {
		return
	}

	ApplyDamage(s.world, ec.Target, ec.Profile.AttackDamage, e)
	ec.AttackCooldown = ec.Profile.AttackInterval
	s.statAttacks.Add(1)
	s.world.PushEvent(event.EventEnemyAttacked, &event.EnemyAttackedPayload{
		Entity: e,
		Target: ec.Target,
		Damage: ec.Profile.AttackDamage,
	})
}

// validTarget re-resolves a weak reference: present, alive and targetable
func (s *EnemySystem) validTarget(t core.Entity) bool {
	if t == core.NoEntity {
		return false
	}
	hp, ok := s.world.Components.Health.GetComponent(t)
	return ok && hp.CanBeTargeted()
}

// nearestHostile finds the closest targetable player or summon in radius
func (s *EnemySystem) nearestHostile(pos component.KineticComponent, radius float64) core.Entity {
	best := core.NoEntity
	bestDist := radius * radius

	consider := func(t core.Entity) {
		if !s.validTarget(t) {
			return
		}
		tp, ok := s.world.Components.Kinetic.GetComponent(t)
		if !ok {
			return
		}
		d := vmath.DistanceSq(pos.X, pos.Y, tp.X, tp.Y)
		if d <= bestDist {
			best = t
			bestDist = d
		}
	}

	consider(s.world.Resources.Player.Entity)
	for _, e := range s.world.Components.Summon.GetAllEntities() {
		consider(e)
	}
	return best
}

func (s *EnemySystem) dropTarget(ec *component.EnemyComponent) {
	ec.Target = core.NoEntity
	ec.Aggro = false
	ec.State = component.EnemyIdle
}
