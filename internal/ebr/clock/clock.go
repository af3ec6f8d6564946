// Package clock implements the domain-wide logical epoch counter.
//
// An Epoch is a monotonically non-decreasing logical timestamp shared by
// every reader and the writer of a single Domain. Unlike the per-thread
// encoded epoch used by FastTrack-style race detectors, this epoch carries
// no thread identity: it is a single global value, advanced only by the
// writer inside a collection cycle.
package clock

import "sync/atomic"

// Epoch is a monotonically non-decreasing logical timestamp.
//
// Zero is reserved to mean "unpinned" / "no constraint" and is never a
// value a Counter holds after Start.
type Epoch uint64

// Start is the first value a fresh Counter reports. Beginning at 1 keeps
// 0 free as the reader-slot sentinel for "not currently pinned".
const Start Epoch = 1

// Counter is the domain's shared epoch. All readers load it; only the
// writer's collection cycle ever advances it.
type Counter struct {
	value atomic.Uint64
}

// NewCounter returns a Counter initialized to Start.
func NewCounter() *Counter {
	c := &Counter{}
	c.value.Store(uint64(Start))
	return c
}

// Load returns the current epoch with acquire ordering.
//
// A reader's Load here synchronizes-with the writer's release Store in
// Advance: observing the new value means every mutation the writer made
// before advancing (including queuing the retired pointer) is visible.
func (c *Counter) Load() Epoch {
	return Epoch(c.value.Load())
}

// Advance moves the epoch forward by exactly one and returns the new
// value. Called only from GcHandle.Collect; never from a reader.
//
// The store uses release ordering so that any reader whose subsequent
// acquire Load observes the new epoch also observes every write the
// writer performed before calling Advance.
func (c *Counter) Advance() Epoch {
	return Epoch(c.value.Add(1))
}
