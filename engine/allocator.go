package engine

import (
	"sync"
	"sync/atomic"

	"github.com/hollowmere/cardbound/core"
)

// Allocator hands out entity handles and tracks live count
//
// Ids are monotonic and never reused: weak references held by other
// entities (enemy targets, summon owners) must miss on lookup after
// release instead of aliasing a recycled body
type Allocator struct {
	mu   sync.Mutex
	next core.Entity
	live atomic.Int64
}

// NewAllocator creates an allocator; the first handle is 1
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Acquire reserves a fresh entity handle
func (a *Allocator) Acquire() core.Entity {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	a.live.Add(1)
	return id
}

// Release returns a handle to the allocator
func (a *Allocator) Release(e core.Entity) {
	if e == core.NoEntity {
		return
	}
	a.live.Add(-1)
}

// Live returns the number of outstanding handles
func (a *Allocator) Live() int {
	return int(a.live.Load())
}

// Reset restarts the id sequence for a new session
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next = 1
	a.live.Store(0)
}
