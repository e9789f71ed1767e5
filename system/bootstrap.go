package system

import "github.com/hollowmere/cardbound/engine"

// RegisterAll wires the full simulation system set into the world and
// returns the cast coordinator, which callers keep for deck inspection
func RegisterAll(world *engine.World) *CastSystem {
	world.AddSystem(NewHealthSystem(world))
	world.AddSystem(NewEnergySystem(world))
	cast := NewCastSystem(world)
	world.AddSystem(cast)
	world.AddSystem(NewPlayerSystem(world))
	world.AddSystem(NewEnemySystem(world))
	world.AddSystem(NewSummonSystem(world))
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewFadeSystem(world))
	world.AddSystem(NewDeathSystem(world))
	world.AddSystem(NewTimerSystem(world))
	return cast
}
