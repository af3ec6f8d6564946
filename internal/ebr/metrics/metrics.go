// Package metrics provides lightweight, atomic-counter introspection for
// a GcHandle, in the same spirit as the teacher's PromotionStats: a flat
// struct of counters, incremented with atomics, safe to read
// concurrently with the writer that updates them.
//
// None of this is on the hot path of Pin/Load/Store; it exists purely
// for observability, exactly as spec.md §7 allows ("collect returns the
// number of reclaimed entries (optional, for observability)").
package metrics

import (
	"expvar"
	"fmt"
	"sync/atomic"
)

// Stats holds cumulative collection counters for one domain.
type Stats struct {
	collections   atomic.Uint64
	reclaimed     atomic.Uint64
	lastScanNanos atomic.Uint64
	queueLen      atomic.Uint64
}

// NewStats returns a zeroed Stats.
func NewStats() *Stats {
	return &Stats{}
}

// RecordCollection updates the counters after one Collect cycle.
func (s *Stats) RecordCollection(reclaimed int, scanNanos int64, queueLenAfter int) {
	s.collections.Add(1)
	s.reclaimed.Add(uint64(reclaimed))
	s.lastScanNanos.Store(uint64(scanNanos))
	s.queueLen.Store(uint64(queueLenAfter))
}

// Collections returns the total number of Collect cycles run.
func (s *Stats) Collections() uint64 { return s.collections.Load() }

// Reclaimed returns the cumulative number of entries destroyed.
func (s *Stats) Reclaimed() uint64 { return s.reclaimed.Load() }

// LastScanNanos returns the duration, in nanoseconds, of the most recent
// registry scan performed during a Collect cycle.
func (s *Stats) LastScanNanos() uint64 { return s.lastScanNanos.Load() }

// QueueLen returns the retire-queue length observed at the end of the
// most recent Collect cycle.
func (s *Stats) QueueLen() uint64 { return s.queueLen.Load() }

// Publish registers s under name in the process-wide expvar map, so it
// shows up alongside any other expvar-published counters the host
// process exposes. Safe to call once per distinct name; a second call
// with the same name panics, matching expvar.Publish's own contract.
func (s *Stats) Publish(name string) {
	m := new(expvar.Map)
	m.Set("collections", expvar.Func(func() any { return s.Collections() }))
	m.Set("reclaimed", expvar.Func(func() any { return s.Reclaimed() }))
	m.Set("last_scan_nanos", expvar.Func(func() any { return s.LastScanNanos() }))
	m.Set("queue_len", expvar.Func(func() any { return s.QueueLen() }))
	expvar.Publish(name, m)
}

// String renders a one-line human-readable summary, useful in log lines.
func (s *Stats) String() string {
	return fmt.Sprintf(
		"collections=%d reclaimed=%d queue_len=%d last_scan_ns=%d",
		s.Collections(), s.Reclaimed(), s.QueueLen(), s.LastScanNanos(),
	)
}
