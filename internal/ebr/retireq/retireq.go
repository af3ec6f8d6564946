// Package retireq implements the writer-local retired-object queue
// (component C4): the sequence of payloads a GcHandle has swapped out of
// an EpochPtr but not yet destroyed, each tagged with the epoch it was
// retired at.
//
// The queue is never shared: only the single writer goroutine that owns
// the enclosing GcHandle ever touches it, so none of its operations take
// a lock or use atomics. Entries are appended in epoch-non-decreasing
// order (retirement epochs only ever grow, because the domain epoch only
// ever grows), which is what lets reclamation be a simple prefix scan
// instead of a full-queue walk or a priority queue.
package retireq

import "github.com/kolkov/epochgc/internal/ebr/clock"

// Entry is one retired payload awaiting reclamation.
type Entry struct {
	// Ptr is an opaque handle to the retired payload, carried only so
	// Destroy can close over it; the queue never dereferences it.
	Ptr any
	// RetireEpoch is the domain epoch observed at the moment the
	// payload was retired — before any advance, per the store-time
	// convention spec.md §9 resolves on.
	RetireEpoch clock.Epoch
	// Destroy runs the payload's destructor exactly once, when the
	// entry becomes reclaimable.
	Destroy func()
}

// Queue is the writer-local sequence of retired entries, stored in
// insertion (and therefore epoch-monotonic) order in a flat growable
// slice. A slice outperforms container/list here: entries are only ever
// appended at the tail and reclaimed as a contiguous prefix, so there is
// no need for the pointer-chasing container/list would add.
type Queue struct {
	entries []Entry
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Push appends e to the tail of the queue.
func (q *Queue) Push(e Entry) {
	q.entries = append(q.entries, e)
}

// Len reports the number of entries still queued.
func (q *Queue) Len() int {
	return len(q.entries)
}

// ReclaimPrefix destroys every entry whose RetireEpoch is strictly less
// than minPinned, in insertion order, and removes them from the queue.
// It stops at the first entry that does not satisfy the condition:
// because entries are epoch-monotonic, no later entry can satisfy it
// either, so a full scan would only waste cycles.
//
// Implemented as an in-place two-pointer compaction: read advances over
// every entry, write only advances (and copies) over survivors, so the
// backing array is reused rather than reallocated.
//
// Returns the number of entries destroyed. If a destructor panics, the
// panic propagates after this entry is still counted as consumed — the
// caller (GcHandle.Collect) is responsible for deciding whether to let
// the panic continue to unwind or recover and continue with the
// remaining queue, per spec.md §4.7 and §5's cancellation rules.
func (q *Queue) ReclaimPrefix(minPinned clock.Epoch) (reclaimed int) {
	read := 0
	// The compaction runs in a defer so that a panicking destructor
	// still leaves the queue consistent: every entry processed so far
	// (including the one whose Destroy panicked) is dropped, and
	// whatever remains unprocessed stays queued for the next Collect.
	defer func() {
		if read == 0 {
			return
		}
		remaining := len(q.entries) - read
		copy(q.entries, q.entries[read:])
		for i := remaining; i < len(q.entries); i++ {
			q.entries[i] = Entry{}
		}
		q.entries = q.entries[:remaining]
	}()

	for read < len(q.entries) && q.entries[read].RetireEpoch < minPinned {
		e := q.entries[read]
		read++
		reclaimed++
		if e.Destroy != nil {
			e.Destroy()
		}
	}

	return reclaimed
}
