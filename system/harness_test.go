package system

import (
	"time"

	"github.com/hollowmere/cardbound/content"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/parameter"
)

// fixture is the shared simulation test rig: a full world with the default
// content set and every system registered, driven by manual ticks
type fixture struct {
	world  *engine.World
	cast   *CastSystem
	player core.Entity
}

func newFixture() *fixture {
	world := engine.NewWorld(event.NewEventQueue())
	world.Resources.Content = content.DefaultService()

	f := &fixture{
		world: world,
		cast:  RegisterAll(world),
	}
	f.player = SpawnPlayer(world, 30, 30)
	f.tick()
	return f
}

// tick advances one fixed simulation step
func (f *fixture) tick() {
	f.world.Tick(parameter.TickInterval)
}

// tickFor advances whole ticks until at least d has elapsed
func (f *fixture) tickFor(d time.Duration) {
	steps := int(d / parameter.TickInterval)
	if time.Duration(steps)*parameter.TickInterval < d {
		steps++
	}
	for i := 0; i < steps; i++ {
		f.tick()
	}
}

func (f *fixture) health(e core.Entity) float64 {
	hp, _ := f.world.Components.Health.GetComponent(e)
	return hp.Current
}

func (f *fixture) alive(e core.Entity) bool {
	hp, ok := f.world.Components.Health.GetComponent(e)
	return ok && hp.Alive
}

func (f *fixture) energy() float64 {
	en, _ := f.world.Components.Energy.GetComponent(f.player)
	return en.Current
}

func (f *fixture) setEnergy(v float64) {
	en, _ := f.world.Components.Energy.GetComponent(f.player)
	en.Current = v
	f.world.Components.Energy.SetComponent(f.player, en)
}

// placeEntity teleports an entity for range scenarios
func (f *fixture) placeEntity(e core.Entity, x, y float64) {
	kin, _ := f.world.Components.Kinetic.GetComponent(e)
	kin.X, kin.Y = x, y
	f.world.Components.Kinetic.SetComponent(e, kin)
}

// eventRecorder captures dispatched events for assertions without
// disturbing the systems that also consume them
type eventRecorder struct {
	types []event.EventType
	seen  []event.GameEvent
}

func (r *eventRecorder) HandleEvent(ev event.GameEvent) {
	r.seen = append(r.seen, ev)
}

func (r *eventRecorder) EventTypes() []event.EventType {
	return r.types
}

func (r *eventRecorder) Name() string  { return "recorder" }
func (r *eventRecorder) Priority() int { return 10000 }
func (r *eventRecorder) Update()       {}

// record registers a recorder for the given event types
func (f *fixture) record(types ...event.EventType) *eventRecorder {
	r := &eventRecorder{types: types}
	f.world.AddSystem(r)
	return r
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.seen {
		if ev.Type == t {
			n++
		}
	}
	return n
}
