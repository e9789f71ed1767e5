package system

import (
	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// SpawnPlayer creates the session player at the given position and records
// it in the player resource. Immortality comes from configuration
func SpawnPlayer(w *engine.World, x, y float64) core.Entity {
	e := w.CreateEntity()

	hp := component.NewHealth(parameter.PlayerMaxHealth)
	hp.Immortal = w.Resources.Config.PlayerImmortal
	w.Components.Health.SetComponent(e, hp)

	w.Components.Kind.SetComponent(e, component.KindComponent{Kind: core.KindPlayer})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{X: x, Y: y})
	w.Components.Player.SetComponent(e, component.PlayerComponent{
		State:   component.PlayerIdle,
		FacingX: 1, // default facing so a dodge before any movement has a direction
	})
	w.Components.Energy.SetComponent(e, component.EnergyComponent{
		Current: parameter.PlayerMaxEnergy,
		Max:     parameter.PlayerMaxEnergy,
		Regen:   parameter.PlayerEnergyRegen,
	})

	w.Resources.Player.Entity = e

	w.PushEvent(event.EventEntitySpawned, &event.EntitySpawnedPayload{Entity: e, Kind: core.KindPlayer})
	w.PushEvent(event.EventPlayerSpawned, &event.PlayerSpawnedPayload{Entity: e})
	return e
}

// SpawnEnemy creates an enemy of the named kind at the given position
// Unknown kinds resolve to the harmless fallback profile, loudly
func SpawnEnemy(w *engine.World, kind string, x, y float64) core.Entity {
	profile := w.Resources.Content.EnemyProfile(kind)

	e := w.CreateEntity()
	w.Components.Health.SetComponent(e, component.NewHealth(profile.MaxHealth))
	w.Components.Kind.SetComponent(e, component.KindComponent{Kind: core.KindEnemy})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{X: x, Y: y})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{
		Profile: profile,
		State:   component.EnemyIdle,
		Target:  core.NoEntity,
	})

	w.PushEvent(event.EventEntitySpawned, &event.EntitySpawnedPayload{Entity: e, Kind: core.KindEnemy})
	return e
}
