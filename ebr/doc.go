// Package ebr implements single-writer/multi-reader epoch-based memory
// reclamation: a way for one writer goroutine to swap heap-allocated
// values behind a pointer while any number of reader goroutines observe
// the previous value, safely, without per-read allocation, reference
// counting, or mutual exclusion on the read path.
//
// # Quick Start
//
//	gc, domain := ebr.NewDomain()
//
//	reader := domain.RegisterReader()
//	ptr := ebr.NewEpochPtr(&configV1)
//
//	// Reader goroutine:
//	guard := reader.Pin()
//	cfg := ptr.Load(guard)
//	_ = cfg
//	guard.Release()
//
//	// Writer goroutine:
//	ptr.Store(&configV2, gc)
//	gc.Collect()
//
// # API Overview
//
//   - Domain construction and configuration: [NewDomain], [Option]
//   - Reader registration and pinning: [DomainHandle.RegisterReader],
//     [ReaderHandle.Pin], [PinGuard]
//   - The protected pointer itself: [EpochPtr], [NewEpochPtr]
//   - Manual and automatic reclamation: [GcHandle.Collect]
//
// # What this package does not do
//
// It does not provide a ready-made list, map, or ring buffer — those are
// left to callers who embed EpochPtr into their own data structures. It
// does not support more than
// one writer per domain; GcHandle enforces this with a runtime check,
// since Go has no type-level affine ownership to make the restriction
// static. It does not bound collection latency: Collect is best-effort
// and threshold-triggered, never scheduled.
package ebr
