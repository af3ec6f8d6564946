// Package slot implements the per-reader pinned-epoch state (component C2
// of the reclamation protocol): a shared record jointly owned by a single
// reader goroutine and the registry that tracks it.
package slot

import (
	"sync/atomic"

	"github.com/kolkov/epochgc/internal/ebr/clock"
)

// unpinned is the sentinel pinned-epoch value meaning "not currently
// pinned". It must never collide with a real Epoch, which is why
// clock.Start begins at 1.
const unpinned clock.Epoch = 0

// Slot is a reader's pinned-epoch state.
//
// PinnedEpoch is atomic and read by the writer during a scan; Nest is
// touched only by the owning goroutine and is deliberately a plain int,
// not an atomic — exactly the rule the teacher's RaceContext.Epoch field
// documents: no other goroutine ever reads or writes it, so promoting it
// to an atomic would change nothing but cost.
type Slot struct {
	pinnedEpoch atomic.Uint64
	nest        int
}

// New returns a freshly allocated, unpinned Slot.
func New() *Slot {
	return &Slot{}
}

// Pin records the current epoch as this slot's pinned epoch if the
// owning goroutine isn't already pinned (nest == 0), or bumps the nesting
// counter if it is. Returns the resulting nesting depth.
//
// Pinning is reentrant by design: a reader that pins twice without
// unpinning in between does not advance to a newer epoch between the two
// pins. The outermost (first) pin fixes the epoch the reader may
// legally observe for the remainder of the nested section.
func (s *Slot) Pin(epoch clock.Epoch) int {
	if s.nest > 0 {
		s.nest++
		return s.nest
	}
	// Release store: the writer's corresponding acquire load of
	// pinnedEpoch must observe an epoch at least this new, so that its
	// reclamation decision is correct with respect to what this reader
	// may have loaded.
	s.pinnedEpoch.Store(uint64(epoch))
	s.nest = 1
	return s.nest
}

// Unpin decrements the nesting counter and, once it reaches zero, clears
// the pinned epoch back to the unpinned sentinel. Returns the resulting
// nesting depth.
func (s *Slot) Unpin() int {
	s.nest--
	if s.nest < 0 {
		panic("ebr: slot unpinned more times than pinned")
	}
	if s.nest == 0 {
		s.pinnedEpoch.Store(uint64(unpinned))
	}
	return s.nest
}

// IsPinned reports whether the owning goroutine currently holds a pin.
// Owner-side only; not meant for the registry's scan.
func (s *Slot) IsPinned() bool {
	return s.nest > 0
}

// PinnedEpoch performs an acquire load of the pinned epoch, for use by
// the writer's registry scan. Returns (0, false) if the slot is
// currently unpinned — such slots place no constraint on reclamation.
func (s *Slot) PinnedEpoch() (clock.Epoch, bool) {
	e := clock.Epoch(s.pinnedEpoch.Load())
	if e == unpinned {
		return 0, false
	}
	return e, true
}
