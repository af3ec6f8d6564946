package retireq

import "testing"

func TestQueue_ReclaimPrefix_StopsAtFirstUnsafeEntry(t *testing.T) {
	q := New()
	var destroyed []int

	q.Push(Entry{RetireEpoch: 1, Destroy: func() { destroyed = append(destroyed, 1) }})
	q.Push(Entry{RetireEpoch: 2, Destroy: func() { destroyed = append(destroyed, 2) }})
	q.Push(Entry{RetireEpoch: 5, Destroy: func() { destroyed = append(destroyed, 5) }})

	n := q.ReclaimPrefix(3) // 1 < 3 and 2 < 3 reclaim; 5 < 3 is false, stop.
	if n != 2 {
		t.Fatalf("ReclaimPrefix(3) = %d, want 2", n)
	}
	if len(destroyed) != 2 || destroyed[0] != 1 || destroyed[1] != 2 {
		t.Fatalf("destroyed = %v, want [1 2]", destroyed)
	}
	if q.Len() != 1 {
		t.Fatalf("Len() after reclaim = %d, want 1", q.Len())
	}
}

func TestQueue_ReclaimPrefix_StrictLessThan(t *testing.T) {
	q := New()
	destroyed := false
	q.Push(Entry{RetireEpoch: 3, Destroy: func() { destroyed = true }})

	n := q.ReclaimPrefix(3) // 3 < 3 is false: must not reclaim.
	if n != 0 || destroyed {
		t.Fatalf("ReclaimPrefix(3) on entry at epoch 3 reclaimed %d (destroyed=%v), want 0 (false)", n, destroyed)
	}

	n = q.ReclaimPrefix(4) // 3 < 4 is true.
	if n != 1 || !destroyed {
		t.Fatalf("ReclaimPrefix(4) = %d (destroyed=%v), want 1 (true)", n, destroyed)
	}
}

func TestQueue_ReclaimPrefix_Idempotent(t *testing.T) {
	q := New()
	q.Push(Entry{RetireEpoch: 1, Destroy: func() {}})

	if n := q.ReclaimPrefix(10); n != 1 {
		t.Fatalf("first ReclaimPrefix = %d, want 1", n)
	}
	if n := q.ReclaimPrefix(10); n != 0 {
		t.Fatalf("second ReclaimPrefix with no intervening push = %d, want 0", n)
	}
}

func TestQueue_ReclaimPrefix_PanicLeavesQueueConsistent(t *testing.T) {
	q := New()
	q.Push(Entry{RetireEpoch: 1, Destroy: func() {}})
	q.Push(Entry{RetireEpoch: 1, Destroy: func() { panic("boom") }})
	q.Push(Entry{RetireEpoch: 1, Destroy: func() {}})

	func() {
		defer func() { _ = recover() }()
		q.ReclaimPrefix(10)
	}()

	// The first two entries (including the panicking one) are consumed;
	// the third, unprocessed at panic time, remains queued.
	if q.Len() != 1 {
		t.Fatalf("Len() after panicking reclaim = %d, want 1", q.Len())
	}
}

func TestQueue_EmptyQueue_ReclaimsNothing(t *testing.T) {
	q := New()
	if n := q.ReclaimPrefix(100); n != 0 {
		t.Fatalf("ReclaimPrefix on empty queue = %d, want 0", n)
	}
}
