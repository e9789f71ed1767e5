package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler drives the world at a fixed tick rate on its own goroutine
// Tests bypass it and call World.Tick directly with a mock clock
type Scheduler struct {
	world    *World
	interval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks *atomic.Int64
}

// NewScheduler creates a scheduler for the world's configured tick interval
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:     world,
		interval:  world.Resources.Config.TickInterval,
		stopChan:  make(chan struct{}),
		statTicks: world.Resources.Status.Ints.Get("engine.ticks"),
	}
}

// Start begins the tick loop
func (s *Scheduler) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.loop()
}

// Stop halts the tick loop and waits for the current tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.world.Tick(s.interval)
			s.statTicks.Add(1)
		}
	}
}
