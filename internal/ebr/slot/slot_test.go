package slot

import (
	"testing"

	"github.com/kolkov/epochgc/internal/ebr/clock"
)

func TestSlot_PinUnpin_RestoresUnpinned(t *testing.T) {
	s := New()
	if _, ok := s.PinnedEpoch(); ok {
		t.Fatal("fresh slot reports pinned")
	}

	s.Pin(5)
	if e, ok := s.PinnedEpoch(); !ok || e != 5 {
		t.Fatalf("PinnedEpoch() = (%d, %v), want (5, true)", e, ok)
	}

	s.Unpin()
	if _, ok := s.PinnedEpoch(); ok {
		t.Fatal("slot still reports pinned after Unpin")
	}
}

func TestSlot_Reentrant_PinsOnlyOnOutermost(t *testing.T) {
	s := New()

	s.Pin(5)
	s.Pin(9) // nested pin while already pinned at 5: must not move the epoch.

	e, ok := s.PinnedEpoch()
	if !ok || e != 5 {
		t.Fatalf("nested Pin changed pinned epoch: got (%d, %v), want (5, true)", e, ok)
	}

	s.Unpin() // drops nest from 2 to 1; still pinned at 5.
	if e, ok := s.PinnedEpoch(); !ok || e != 5 {
		t.Fatalf("after inner Unpin: PinnedEpoch() = (%d, %v), want (5, true)", e, ok)
	}

	s.Unpin() // drops nest from 1 to 0; now unpinned.
	if _, ok := s.PinnedEpoch(); ok {
		t.Fatal("slot still reports pinned after outermost Unpin")
	}
}

func TestSlot_UnpinWithoutPin_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from unbalanced Unpin")
		}
	}()
	New().Unpin()
}

func TestSlot_NestInvariant_MatchesPinnedState(t *testing.T) {
	s := New()
	if s.IsPinned() {
		t.Fatal("fresh slot reports IsPinned")
	}
	for i := 0; i < 3; i++ {
		s.Pin(clock.Epoch(i + 1))
		if !s.IsPinned() {
			t.Fatal("IsPinned() false after Pin")
		}
	}
	for i := 0; i < 3; i++ {
		s.Unpin()
	}
	if s.IsPinned() {
		t.Fatal("IsPinned() true after balanced Unpin calls")
	}
}
