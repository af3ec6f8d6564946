package ebr

import (
	"github.com/kolkov/epochgc/internal/ebr/clock"
	"github.com/kolkov/epochgc/internal/ebr/gc"
	"github.com/kolkov/epochgc/internal/ebr/registry"
	"github.com/kolkov/epochgc/internal/ebr/slot"
)

// NewDomain constructs a fresh reclamation domain and returns the pair
// of handles spec.md's Domain::builder().build() yields: an exclusive
// GcHandle for the single writer, and a cloneable, shareable
// DomainHandle any number of reader goroutines can register against.
//
// With no options, the domain uses DefaultAutoReclaimThreshold and
// DefaultCleanupInterval.
func NewDomain(opts ...Option) (*GcHandle, *DomainHandle) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cleanupInterval <= 0 {
		panic("ebr: cleanup interval must be positive")
	}

	engine := gc.NewEngine(cfg.cleanupInterval)

	gcHandle := &GcHandle{
		engine:    engine,
		threshold: cfg.autoReclaimThreshold,
		logger:    cfg.logger,
	}
	domain := &DomainHandle{
		epoch:    engine.Epoch,
		registry: engine.Registry,
	}
	return gcHandle, domain
}

// DomainHandle is the cheap, shareable side of a Domain. Any number of
// goroutines may hold a clone and register readers concurrently; none of
// its operations require the registry's mutex to be held for longer
// than the single linear scan each performs.
type DomainHandle struct {
	epoch    *clock.Counter
	registry *registry.Registry
}

// Clone returns a new DomainHandle referencing the same underlying
// domain. Cheap: it copies two pointers, never the domain state itself.
func (d *DomainHandle) Clone() *DomainHandle {
	return &DomainHandle{epoch: d.epoch, registry: d.registry}
}

// RegisterReader allocates a new reader slot, registers a weak reference
// to it in the domain's registry, and returns the strong-owning handle
// the calling goroutine uses to pin and unpin.
func (d *DomainHandle) RegisterReader() *ReaderHandle {
	s := slot.New()
	w := d.registry.Register(s)
	return &ReaderHandle{domain: d, slot: s, weak: w}
}
