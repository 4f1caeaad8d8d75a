// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

// AllocateNew obtains fresh backing memory, rounds it up to an aligned
// region, writes the header, zero-fills and threads the block array into a
// free list, and links the new slab as the caller's current slab.
//
// It returns the address of the new Header, or an error if the system
// allocator refused the request.
func AllocateNew(c *LocalCache) (uintptr, error) {
	raw, aligned, rawLen, err := AllocateRegion()
	if err != nil {
		return 0, err
	}

	h := headerAt(aligned)
	*h = Header{
		self:     aligned,
		mem:      aligned,
		rawAlloc: raw,
		rawLen:   uintptr(rawLen),
	}

	zeroBlocks(h)
	threadFreeList(h)

	h.freeCount = EffectiveBlocks

	// A freshly constructed slab always becomes the current slab, never a
	// partial — there is nothing else competing for the role yet.
	h.next = c.current
	c.current = aligned
	c.rawAllocs++
	c.liveSlabs++

	return aligned, nil
}

// zeroBlocks warms the block array's pages into RAM, improving first-touch
// latency for the blocks about to be handed out. mmap'd anonymous pages are
// already zero, but writing to them here forces the kernel to back them
// with real physical pages up front rather than on the first access from a
// caller.
func zeroBlocks(h *Header) {
	region := bytesAt(h.mem, BlockCount*BlockSize)
	clear(region[SlabOverhead*BlockSize:])
}

// threadFreeList links the block array into a singly-linked free list in
// ascending address order: freeList points at the first block, the last
// block's link is nil.
func threadFreeList(h *Header) {
	first := h.firstBlock()
	for i := uint64(0); i < EffectiveBlocks; i++ {
		addr := first + uintptr(i)*BlockSize
		var next uintptr
		if i+1 < EffectiveBlocks {
			next = addr + BlockSize
		}
		writeNext(addr, next)
	}
	h.freeList = first
}
