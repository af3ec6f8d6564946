package ebr

import (
	"sync/atomic"

	"github.com/kolkov/epochgc/internal/ebr/gc"
	"github.com/kolkov/epochgc/internal/ebr/metrics"
)

// GcHandle is the writer-exclusive side of a Domain: the only handle
// that can store a new value into an EpochPtr or run a reclamation
// cycle. A process has at most one GcHandle per domain — NewDomain
// hands out exactly one — and it must not be copied: it embeds noCopy so
// `go vet` flags accidental copies, and it additionally panics at
// runtime if two goroutines ever drive it concurrently, since Go has no
// type-level way to make "exactly one writer" a compile error the way an
// affine-typed language would.
type GcHandle struct {
	noCopy noCopy //nolint:unused // enforces go vet's copylocks check only.

	engine    *gc.Engine
	threshold *int // nil disables automatic collection.
	logger    Logger
	busy      atomic.Bool
}

// enter marks the handle busy for the duration of a mutating call,
// panicking if another goroutine is already inside one. exit must run
// via defer so a panicking Store or Collect still releases the flag —
// otherwise every subsequent call, even from the rightful single writer
// goroutine recovering from the panic, would wrongly see the handle as
// still in use.
func (g *GcHandle) enter() {
	if !g.busy.CompareAndSwap(false, true) {
		panic("ebr: concurrent access to GcHandle from more than one goroutine")
	}
}

func (g *GcHandle) exit() {
	g.busy.Store(false)
}

// Collect runs one reclamation cycle: advances the domain epoch, scans
// the reader registry for the minimum pinned epoch, and destroys every
// retired entry strictly older than that minimum. Returns the number of
// entries destroyed, purely for observability — callers never need to
// inspect it for correctness.
//
// If the queue is still over the configured auto-reclaim threshold
// after the cycle runs, Collect warns through the domain's Logger: that
// shape usually means some reader has been pinned for a long time and
// is blocking reclamation.
func (g *GcHandle) Collect() int {
	g.enter()
	defer g.exit()

	reclaimed := g.engine.Collect()
	g.logger.Debugf("ebr: collect cycle reclaimed %d entries, %d still queued", reclaimed, g.engine.QueueLen())
	if g.threshold != nil && g.engine.QueueLen() > *g.threshold {
		g.logger.Warnf("ebr: retire queue still over threshold (%d) after collect; a pinned reader may be stuck", *g.threshold)
	}
	return reclaimed
}

// QueueLen reports the number of entries currently awaiting
// reclamation. Safe to call from the writer goroutine between Store and
// Collect calls; not meant for readers.
func (g *GcHandle) QueueLen() int {
	return g.engine.QueueLen()
}

// Stats exposes the domain's cumulative collection counters for
// observability (dashboards, expvar publishing via Stats().Publish).
// Reading it never requires holding the writer's exclusivity, since the
// underlying counters are atomic.
func (g *GcHandle) Stats() *metrics.Stats {
	return g.engine.Stats
}
