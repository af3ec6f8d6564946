package ebr

import "sync/atomic"

// EpochPtr is an atomic pointer to a heap-allocated T, mediating safe
// reads from any number of pinned readers against a single writer's
// stores. It holds whatever NewEpochPtr and Store were given; neither
// checks its argument for nil, so it stays non-nil only as long as the
// caller never passes nil.
//
// A store transfers ownership of the previously installed pointer to the
// writer's retire queue — no other live EpochPtr may ever point at the
// same allocation, since nothing else has a way to reach it once
// swapped out here.
type EpochPtr[T any] struct {
	cell    atomic.Pointer[T]
	destroy func(*T)
}

// NewEpochPtr allocates a cell pointing at v. No garbage collection
// interaction happens here.
func NewEpochPtr[T any](v *T) *EpochPtr[T] {
	return NewEpochPtrWithDestructor(v, nil)
}

// NewEpochPtrWithDestructor is like NewEpochPtr, but additionally
// records destroy, which runs once on every value this EpochPtr ever
// retires (every value but whichever is currently installed). Use this
// when T holds a resource beyond plain memory — a file descriptor, a
// pooled buffer to return — that needs explicit cleanup once no reader
// can still observe it; for plain data, NewEpochPtr's nil destructor is
// enough, since Go's own garbage collector reclaims the memory as soon
// as the retire queue drops its last reference.
func NewEpochPtrWithDestructor[T any](v *T, destroy func(*T)) *EpochPtr[T] {
	p := &EpochPtr[T]{destroy: destroy}
	p.cell.Store(v)
	return p
}

// Load returns the currently installed value. g must be an active guard
// — one that has been Pin'd and not yet fully Released — or Load panics,
// since an inactive guard gives no happens-before guarantee against a
// concurrent Store retiring the value out from under the caller.
//
// The returned pointer is valid for as long as the guard (or any of its
// clones) remains active; it must not be retained past that point.
func (p *EpochPtr[T]) Load(g *PinGuard) *T {
	if g == nil || !g.slot.IsPinned() {
		panic("ebr: Load called with an inactive PinGuard")
	}
	return p.cell.Load()
}

// Store installs v, retiring the previously installed value into gc's
// queue tagged with the domain's current epoch — read before any
// advance, per spec.md §9's resolution of the store-timing question. If
// the queue length then exceeds gc's configured auto-reclaim threshold,
// Store calls gc.Collect() itself before returning.
//
// gc must be the GcHandle for the same domain this EpochPtr's readers
// pin against; passing a GcHandle from a different domain produces a
// value that is memory-safe (nothing is freed early) but logically
// meaningless (the retire epoch is drawn from the wrong clock).
func (p *EpochPtr[T]) Store(v *T, gc *GcHandle) {
	queueLen := func() int {
		gc.enter()
		defer gc.exit()
		old := p.cell.Swap(v)
		destroy := p.destroy
		gc.engine.Retire(old, func() {
			if destroy != nil {
				destroy(old)
			}
		})
		return gc.engine.QueueLen()
	}()

	if gc.threshold != nil && queueLen > *gc.threshold {
		gc.Collect()
	}
}
