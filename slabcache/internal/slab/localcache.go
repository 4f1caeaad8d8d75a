// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

// LocalCache is the per-thread state holding a fastbin, a current slab, and
// a list of partial slabs, touched by exactly one goroutine at a time by
// construction (the exported slabcache.Cache wrapping this is never shared
// between goroutines). Every address field below is a uintptr into mmap'd
// memory, never a Go pointer, for the same GC-soundness reason as Header
// (see header.go) — and, not incidentally, because that is exactly how
// pointerstore.Store keeps its own slab bookkeeping outside the Go heap.
type LocalCache struct {
	fastbin      uintptr
	fastbinCount int

	current uintptr // may be 0 (nil)
	partial uintptr // head of the partial-slabs list, may be 0 (nil)

	// Accounting, narrowed from pointerstore.Store's atomic.Uint64
	// counters (needed there because Store is shared across threads) to
	// plain uint64 here, since a LocalCache is never touched
	// concurrently.
	allocs    uint64
	frees     uint64
	reused    uint64
	rawAllocs uint64
	liveSlabs int
}

// Stats mirrors pointerstore.Stats, narrowed to this cache's own view of
// the world: nothing shares state across caches in steady state, so there
// is no global accounting to report.
type Stats struct {
	Allocs    uint64
	Frees     uint64
	RawAllocs uint64
	Live      uint64
	Reused    uint64
	Slabs     int
}

// Stats returns this cache's allocation statistics.
func (c *LocalCache) Stats() Stats {
	return Stats{
		Allocs:    c.allocs,
		Frees:     c.frees,
		RawAllocs: c.rawAllocs,
		Live:      c.allocs - c.frees,
		Reused:    c.reused,
		Slabs:     c.liveSlabs,
	}
}
