// Package weakref provides a non-owning reference usable by a registry
// that must not extend the lifetime of the thing it observes.
//
// Go has no public first-class weak pointer for arbitrary heap values on
// the toolchain versions this module targets, so liveness is modeled
// explicitly: the owner holds a *Weak and calls Kill when it releases its
// strong reference; any holder of the same *Weak sees Get report false
// from that point on. This mirrors the liveness-flag half of a
// distributed refcounter (see DESIGN.md) without needing the counting
// half — the registry only ever asks "is this one still alive?", never
// "how many holders remain?".
package weakref

import "sync/atomic"

// Weak is a non-owning reference to a value of type T.
type Weak[T any] struct {
	val   *T
	alive atomic.Bool
}

// New creates a Weak wrapping val, initially alive. The caller retains
// the strong (owning) reference to val separately; Weak never owns it.
func New[T any](val *T) *Weak[T] {
	w := &Weak[T]{val: val}
	w.alive.Store(true)
	return w
}

// Get returns the wrapped value and true if the owner has not yet called
// Kill, or (nil, false) once it has.
func (w *Weak[T]) Get() (*T, bool) {
	if !w.alive.Load() {
		return nil, false
	}
	return w.val, true
}

// Kill marks the reference dead. Called by the owner when its strong
// reference is dropped. Idempotent.
func (w *Weak[T]) Kill() {
	w.alive.Store(false)
}

// IsAlive reports whether Kill has not yet been called.
func (w *Weak[T]) IsAlive() bool {
	return w.alive.Load()
}
