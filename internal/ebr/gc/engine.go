// Package gc implements the reclamation engine (component C7): the
// procedure that advances the domain epoch, scans the reader registry
// for the minimum pinned epoch, and destroys every retired entry that is
// now provably unreachable by any pinned reader.
package gc

import (
	"time"

	"github.com/kolkov/epochgc/internal/ebr/clock"
	"github.com/kolkov/epochgc/internal/ebr/metrics"
	"github.com/kolkov/epochgc/internal/ebr/registry"
	"github.com/kolkov/epochgc/internal/ebr/retireq"
)

// Engine holds everything a single writer needs to retire payloads and
// run collection cycles. It has no internal synchronization of its own:
// the caller (GcHandle in the public package) is responsible for
// ensuring only one goroutine drives an Engine at a time.
type Engine struct {
	Epoch    *clock.Counter
	Registry *registry.Registry
	Queue    *retireq.Queue
	Stats    *metrics.Stats

	// CleanupInterval is the number of Collect cycles between registry
	// prunes. Zero disables periodic pruning.
	CleanupInterval int

	cycles int
}

// NewEngine wires a fresh clock, registry, queue, and stats block
// together under one Engine, per the CleanupInterval configured on the
// enclosing domain.
func NewEngine(cleanupInterval int) *Engine {
	return &Engine{
		Epoch:           clock.NewCounter(),
		Registry:        registry.New(),
		Queue:           retireq.New(),
		Stats:           metrics.NewStats(),
		CleanupInterval: cleanupInterval,
	}
}

// Retire queues an entry for future reclamation, tagged with the
// epoch observed right now — before any advance, which is this
// component's resolution of spec.md §9's open question.
func (e *Engine) Retire(ptr any, destroy func()) {
	e.Queue.Push(retireq.Entry{
		Ptr:         ptr,
		RetireEpoch: e.Epoch.Load(),
		Destroy:     destroy,
	})
}

// QueueLen reports the number of entries currently awaiting reclamation.
func (e *Engine) QueueLen() int {
	return e.Queue.Len()
}

// Collect runs one reclamation cycle:
//  1. Advance the epoch.
//  2. Scan the registry for the minimum pinned epoch across live readers.
//  3. Destroy every retired entry strictly older than that minimum.
//  4. Every CleanupInterval cycles, prune dead registry entries.
//
// Returns the number of entries destroyed.
func (e *Engine) Collect() int {
	e.Epoch.Advance()

	scanStart := time.Now()
	minPinned, constrained := e.Registry.ScanMinPinned()
	scanElapsed := time.Since(scanStart)
	if !constrained {
		// No pinned reader anywhere: nothing constrains reclamation, so
		// treat the current epoch as the minimum (spec.md §8, "Registry
		// empty" boundary case, generalized to "no reader pinned").
		minPinned = e.Epoch.Load()
	}

	reclaimed := e.Queue.ReclaimPrefix(minPinned)

	e.cycles++
	if e.CleanupInterval > 0 && e.cycles%e.CleanupInterval == 0 {
		e.Registry.Prune()
	}

	e.Stats.RecordCollection(reclaimed, scanElapsed.Nanoseconds(), e.Queue.Len())
	return reclaimed
}
