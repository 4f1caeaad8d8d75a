// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

// Alloc is the four-tier allocation path: fastbin, then current slab (with
// batched refill), then partial slabs, then a freshly constructed slab.
// Tiers are tried top-down and the first one that can serve the request
// returns immediately. No tier beyond the fresh-slab tier touches the
// system allocator, and no tier synchronizes with any other thread — this
// function only ever reads and writes c and the mmap'd memory c already
// owns.
func Alloc(c *LocalCache) (uintptr, error) {
	for {
		// Tier 1: fastbin.
		if c.fastbinCount > 0 {
			block := c.fastbin
			c.fastbin = readNext(block)
			c.fastbinCount--
			c.allocs++
			c.reused++
			return block, nil
		}

		// Tier 2: current slab, with batched refill.
		if c.current != 0 {
			h := headerAt(c.current)
			if h.freeCount > 0 {
				if refillFastbinFromCurrent(c, h) {
					// Batched refill path: the 32 detached
					// blocks are now in the fastbin; serve
					// this request by popping it, exactly
					// like tier 1.
					block := c.fastbin
					c.fastbin = readNext(block)
					c.fastbinCount--
					c.allocs++
					c.reused++
					return block, nil
				}

				block := popFreeList(h)
				if h.freeCount == 0 {
					// The slab is now fully allocated. It is
					// dropped entirely: it is not moved to the
					// partial list, and is only rediscovered
					// later through the slow path of Free via
					// its back-pointer.
					c.current = 0
				}

				c.allocs++
				return block, nil
			}
		}

		// Tier 3: partial slabs.
		if c.current == 0 && c.partial != 0 {
			h := headerAt(c.partial)
			c.partial = h.next
			h.next = 0
			c.current = h.mem
			continue
		}

		// Tier 4: fresh slab.
		if _, err := AllocateNew(c); err != nil {
			return 0, err
		}
		continue
	}
}

// refillFastbinFromCurrent implements the batched-refill half of tier 2: if
// more than BlockCacheRefillLimit blocks remain free in the current slab,
// move BlockCacheRefillLimit of them into the fastbin in one batch, so that
// the next BlockCacheRefillLimit allocations hit tier 1 instead of tier 2.
// This reverses the blocks' free-list order (LIFO transfer), which is fine:
// no caller is known to depend on free order.
func refillFastbinFromCurrent(c *LocalCache, h *Header) bool {
	if h.freeCount <= BlockCacheRefillLimit {
		return false
	}

	for i := 0; i < BlockCacheRefillLimit; i++ {
		block := popFreeList(h)
		writeNext(block, c.fastbin)
		c.fastbin = block
		c.fastbinCount++
	}

	return true
}

// popFreeList detaches the head of a slab's free list and returns its
// address, decrementing freeCount. Caller must have already checked
// freeCount > 0.
func popFreeList(h *Header) uintptr {
	block := h.freeList
	h.freeList = readNext(block)
	h.freeCount--
	return block
}

// Free pushes onto the fastbin while it has room, otherwise recovers the
// owning slab by masking the block address and pushes onto that slab's
// free list, promoting the slab into this cache's partial list if the push
// is the slab's full-to-partial transition.
func Free(c *LocalCache, block uintptr) {
	if c.fastbinCount < BlockCacheLimit {
		writeNext(block, c.fastbin)
		c.fastbin = block
		c.fastbinCount++
		c.frees++
		return
	}

	h := OwnerOf(block)
	writeNext(block, h.freeList)
	h.freeList = block
	h.freeCount++

	if h.freeCount == 1 && h.mem != c.current {
		// Full-to-partial transition: this slab was not tracked by
		// any list, so it is adopted into the freeing cache's
		// partial list. If the freeing cache is a different
		// goroutine's cache than the one that originally owned this
		// slab, ownership has just migrated — this is permitted and
		// requires no synchronization: the slab was reachable
		// through at most one cache's lists at any moment, and this
		// Free is the first one to touch it since it fell out of
		// current.
		h.next = c.partial
		c.partial = h.mem
	}

	c.frees++
}
