package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityHealth   = 10  // Damage/heal request intake before actors move
	PriorityEnergy   = 20  // Regen before cast gating
	PriorityCast     = 30  // Coordinator before new summons tick
	PriorityPlayer   = 40  // Player state resolution before movement
	PriorityEnemy    = 50  // AI after player, before movement integration
	PrioritySummon   = 60  // Lifetime countdown after AI
	PriorityMovement = 100 // Velocity integration after all state resolution
	PriorityFade     = 200 // Visual fades after game logic
	PriorityDeath    = 850 // Deferred destruction near end of tick
	PriorityTimer    = 900 // Lifecycle timers tag for next destruction pass
)
