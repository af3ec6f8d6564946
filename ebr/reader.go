package ebr

import (
	"github.com/kolkov/epochgc/internal/ebr/clock"
	"github.com/kolkov/epochgc/internal/ebr/slot"
	"github.com/kolkov/epochgc/internal/ebr/weakref"
)

// ReaderHandle is a goroutine's strong-owning reference to its
// registered slot. It is not safe to share a single ReaderHandle across
// goroutines — each reader goroutine should call
// DomainHandle.RegisterReader for itself.
type ReaderHandle struct {
	domain *DomainHandle
	slot   *slot.Slot
	weak   *weakref.Weak[slot.Slot]
}

// Pin acquires (or, if already held on this goroutine, extends) this
// reader's pin on the current epoch and returns a guard. Pinning is
// reentrant: calling Pin again before releasing the first guard bumps a
// nesting counter instead of moving to a newer epoch, so the value
// observable through the innermost pin's lifetime never changes
// partway through a nested critical section.
func (r *ReaderHandle) Pin() *PinGuard {
	var epoch clock.Epoch
	if !r.slot.IsPinned() {
		epoch = r.domain.epoch.Load()
	}
	r.slot.Pin(epoch)
	return &PinGuard{slot: r.slot}
}

// Close releases this reader's registration: from then on the writer's
// registry scan skips this slot, and the slot is removed on the domain's
// next periodic cleanup. A guard still held at the time of the call can
// still be used with Load and Release, but its pin no longer holds back
// reclamation.
func (r *ReaderHandle) Close() {
	r.domain.registry.Unregister(r.weak)
}

// PinGuard is scoped evidence that its owning reader is pinned at some
// epoch. It is reentrant: Clone bumps the underlying nesting counter,
// and each Release call (including the one matching the original Pin)
// decrements it; the pin is only actually released once every clone has
// been released.
type PinGuard struct {
	slot *slot.Slot
}

// Clone returns a second guard over the same pin, bumping the nesting
// counter. Useful when a pinned section needs to hand a guard to a
// callee without giving up its own.
func (g *PinGuard) Clone() *PinGuard {
	g.slot.Pin(0) // nest > 0 already: the epoch argument is ignored.
	return &PinGuard{slot: g.slot}
}

// Release decrements the nesting counter and, once it reaches zero,
// clears the slot's pinned epoch so it no longer constrains
// reclamation. Safe to call from a defer regardless of the exit path.
func (g *PinGuard) Release() {
	g.slot.Unpin()
}
