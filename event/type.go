package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset signals a full session reset
	// Trigger: Frontend restart command
	// Consumer: All systems (Init re-entry) | Payload: nil
	EventGameReset EventType = iota

	// EventSystemToggle enables or disables a named system
	// Trigger: Debug commands
	// Consumer: All systems | Payload: *SystemTogglePayload
	EventSystemToggle

	// EventTimerStart registers a lifecycle timer for an entity
	// Trigger: Systems creating transient entities or deferring destruction
	// Consumer: TimerSystem | Payload: *TimerStartPayload
	EventTimerStart

	// === Input Event ===

	// EventMoveInput carries the normalized directional input for this tick
	// Trigger: Frontend input loop
	// Consumer: PlayerSystem | Payload: *MoveInputPayload
	EventMoveInput

	// EventDodgeRequest asks the player to start a dodge
	// Trigger: Frontend input loop
	// Consumer: PlayerSystem | Payload: nil
	EventDodgeRequest

	// EventCastRequest activates a card slot
	// Trigger: Frontend input loop (slot keys)
	// Consumer: CastSystem | Payload: *CastRequestPayload
	EventCastRequest

	// === Combat Event ===

	// EventDamageRequest asks the pipeline to damage an entity
	// Trigger: Any damage source outside the system package
	// Consumer: HealthSystem | Payload: *DamageRequestPayload
	EventDamageRequest

	// EventHealRequest asks the pipeline to heal an entity
	// Trigger: Any heal source outside the system package
	// Consumer: HealthSystem | Payload: *HealRequestPayload
	EventHealRequest

	// EventKillRequest forces an entity death through the pipeline
	// Trigger: Debug commands, scripted deaths
	// Consumer: HealthSystem | Payload: *KillRequestPayload
	EventKillRequest

	// EventHealthChanged reports a health mutation
	// Trigger: Damage pipeline
	// Consumer: Frontend HUD, listeners | Payload: *HealthChangedPayload
	EventHealthChanged

	// EventDamageReceived reports applied damage
	// Trigger: Damage pipeline
	// Consumer: EnemySystem (struck aggro), HUD | Payload: *DamageReceivedPayload
	EventDamageReceived

	// EventHealReceived reports the actual applied heal delta
	// Trigger: Damage pipeline | Payload: *HealReceivedPayload
	EventHealReceived

	// EventEntitySpawned reports a new entity in the simulation
	// Trigger: Spawn helpers | Payload: *EntitySpawnedPayload
	EventEntitySpawned

	// EventEntityDied reports a terminal death, exactly once per entity
	// Trigger: Damage pipeline Kill
	// Consumer: Kind systems (death hooks), HUD | Payload: *EntityDiedPayload
	EventEntityDied

	// === Player Event ===

	// EventPlayerSpawned reports the session player entity
	// Trigger: Spawn helpers | Payload: *PlayerSpawnedPayload
	EventPlayerSpawned

	// EventPlayerDodged reports a successful dodge start
	// Trigger: PlayerSystem | Payload: *PlayerDodgedPayload
	EventPlayerDodged

	// EventPlayerDied reports the player death position
	// Trigger: PlayerSystem death hook | Payload: *PlayerDiedPayload
	EventPlayerDied

	// EventEnergyChanged reports any energy mutation
	// Trigger: EnergySystem | Payload: *EnergyChangedPayload
	EventEnergyChanged

	// === Enemy Event ===

	// EventEnemyAttacked reports an executed enemy attack
	// Trigger: EnemySystem | Payload: *EnemyAttackedPayload
	EventEnemyAttacked

	// EventEnemyKilled reports the kill reward yield
	// Trigger: EnemySystem death hook | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// === Summon / Card Event ===

	// EventSummonCreated reports a new summon entity
	// Trigger: CastSystem primary cast | Payload: *SummonCreatedPayload
	EventSummonCreated

	// EventSummonExpired reports a lifetime-driven summon deactivation
	// Trigger: SummonSystem
	// Consumer: CastSystem (slot clear), HUD | Payload: *SummonEndedPayload
	EventSummonExpired

	// EventSummonDied reports a damage-driven summon death
	// Trigger: SummonSystem death hook
	// Consumer: CastSystem (slot clear), HUD | Payload: *SummonEndedPayload
	EventSummonDied

	// EventSecondaryUsed reports a successful secondary-effect activation
	// Trigger: SummonSystem | Payload: *SecondaryUsedPayload
	EventSecondaryUsed

	// EventCardCast reports a successful primary cast and remaining charges
	// Trigger: CastSystem | Payload: *CardCastPayload
	EventCardCast

	// EventCastRejected reports a rejected slot activation (diagnostic)
	// Trigger: CastSystem | Payload: *CastRejectedPayload
	EventCastRejected
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
