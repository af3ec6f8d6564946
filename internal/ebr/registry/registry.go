// Package registry implements the reader registry (component C3): the
// set of live reader slots the writer consults to compute the minimum
// pinned epoch before reclaiming retired objects.
//
// The registry holds only weak (non-owning) references to slots. A
// reader's strong, owning reference lives with the reader goroutine;
// when that reference is dropped the registry entry becomes prunable.
// The critical section is intentionally short: register, scan, and
// prune are all O(n) linear walks under a plain mutex, never held while
// a reader pins, unpins, or loads — those operations touch only the
// slot, never the registry.
package registry

import (
	"sync"

	"github.com/kolkov/epochgc/internal/ebr/clock"
	"github.com/kolkov/epochgc/internal/ebr/slot"
	"github.com/kolkov/epochgc/internal/ebr/weakref"
)

// Registry is the writer-consulted set of live reader slots.
type Registry struct {
	mu    sync.Mutex
	slots []*weakref.Weak[slot.Slot]
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a weak reference to s. Returns a handle the caller must
// pass to Unregister when its strong reference to s is dropped.
func (r *Registry) Register(s *slot.Slot) *weakref.Weak[slot.Slot] {
	w := weakref.New(s)
	r.mu.Lock()
	r.slots = append(r.slots, w)
	r.mu.Unlock()
	return w
}

// Unregister marks w dead. The registry does not remove it from the
// backing slice immediately — that happens on the next Prune — so
// readers never pay for deregistration on their hot path.
func (r *Registry) Unregister(w *weakref.Weak[slot.Slot]) {
	w.Kill()
}

// ScanMinPinned computes the minimum pinned epoch across all live,
// currently-pinned slots. If no live slot is pinned, it returns
// (0, false): the caller should then treat the current
// domain epoch as the effective minimum, per spec: absence of pinned
// readers means nothing constrains reclamation.
func (r *Registry) ScanMinPinned() (min clock.Epoch, constrained bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range r.slots {
		s, alive := w.Get()
		if !alive {
			continue
		}
		e, pinned := s.PinnedEpoch()
		if !pinned {
			continue
		}
		if !constrained || e < min {
			min = e
			constrained = true
		}
	}
	return min, constrained
}

// Prune drops dead weak references from the backing slice. It is not
// called on every collection cycle — the writer amortizes its cost over
// cleanupInterval cycles (see package gc) — because walking the full
// slice only pays off once enough readers have actually churned.
func (r *Registry) Prune() {
	r.mu.Lock()
	defer r.mu.Unlock()

	live := r.slots[:0]
	for _, w := range r.slots {
		if w.IsAlive() {
			live = append(live, w)
		}
	}
	r.slots = live
}

// Len reports the number of weak references currently held, live or
// dead. Exposed for tests and metrics, not part of the hot path.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
