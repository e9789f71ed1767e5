package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/status"
)

// World contains all entities, their typed component stores, singleton
// resources, and the registered systems
type World struct {
	mu sync.Mutex

	allocator *Allocator
	clock     TimeProvider

	Components ComponentStore
	Resources  *Resource

	router  *EventRouter
	systems []System
}

// NewWorld creates a world attached to the given event queue
// Content and config resources are filled in by the bootstrap before
// systems are constructed
func NewWorld(queue *event.EventQueue) *World {
	w := &World{
		allocator: NewAllocator(),
		clock:     NewMonotonicTimeProvider(),
		router:    NewEventRouter(queue),
		Resources: &Resource{
			Time:   &TimeResource{},
			Config: defaultConfigResource(),
			Events: &EventQueueResource{Queue: queue},
			Status: status.NewRegistry(),
			Player: &PlayerResource{},
		},
	}
	w.Components = newComponentStore()
	return w
}

// CreateEntity reserves a new entity handle
func (w *World) CreateEntity() core.Entity {
	return w.allocator.Acquire()
}

// DestroyEntity removes all components for an entity and releases its handle
func (w *World) DestroyEntity(e core.Entity) {
	if e == core.NoEntity {
		return
	}
	cs := &w.Components
	cs.Kind.RemoveEntity(e)
	cs.Health.RemoveEntity(e)
	cs.Kinetic.RemoveEntity(e)
	cs.Player.RemoveEntity(e)
	cs.Energy.RemoveEntity(e)
	cs.Enemy.RemoveEntity(e)
	cs.Summon.RemoveEntity(e)
	cs.Fade.RemoveEntity(e)
	cs.Flash.RemoveEntity(e)
	cs.Boost.RemoveEntity(e)
	cs.Timer.RemoveEntity(e)
	cs.Death.RemoveEntity(e)
	w.allocator.Release(e)
}

// Clear removes all entities and restarts the id sequence
func (w *World) Clear() {
	cs := &w.Components
	cs.Kind.ClearAllComponents()
	cs.Health.ClearAllComponents()
	cs.Kinetic.ClearAllComponents()
	cs.Player.ClearAllComponents()
	cs.Energy.ClearAllComponents()
	cs.Enemy.ClearAllComponents()
	cs.Summon.ClearAllComponents()
	cs.Fade.ClearAllComponents()
	cs.Flash.ClearAllComponents()
	cs.Boost.ClearAllComponents()
	cs.Timer.ClearAllComponents()
	cs.Death.ClearAllComponents()
	w.allocator.Reset()
}

// AddSystem registers a system, keeping the list priority-sorted
// Systems implementing EventHandler are registered with the router
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})

	if handler, ok := system.(EventHandler); ok {
		w.router.Register(handler)
	}
}

// SetClock replaces the wall-clock source; tests install a mock provider
func (w *World) SetClock(clock TimeProvider) {
	w.clock = clock
}

// PushEvent queues an event stamped with the current frame and wall time
// Safe to call from any goroutine
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resources.Events.Queue.Push(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     w.Resources.Time.FrameNumber,
		Timestamp: w.clock.Now(),
	})
}

// Tick advances the simulation by dt: update time, dispatch all pending
// events, then run systems in priority order
//
// Single simulation goroutine; event producers on other goroutines only
// touch the lock-free queue. Mutation and its event publication within one
// tick are atomic from the caller's perspective
func (w *World) Tick(dt time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	tr := w.Resources.Time
	tr.Update(tr.GameTime.Add(dt), dt, tr.FrameNumber+1)

	w.router.DispatchAll()

	for _, system := range w.systems {
		system.Update()
	}
}

// RunSafe executes fn while holding the world lock, for frame renderers
// that read component state between ticks
func (w *World) RunSafe(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn()
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.allocator.Live()
}
