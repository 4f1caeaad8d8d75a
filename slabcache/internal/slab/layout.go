// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

// Package slab implements the tiered, thread-cached fixed-size-block
// allocator. It is internal: callers use the exported slabcache.Cache type,
// never this package directly.
package slab

import (
	"unsafe"

	"github.com/fmstephe/flib/fmath"
)

const (
	// BlockSize is the size, in bytes, of every allocatable block.
	BlockSize = 64

	// BlockCount is the number of blocks, including header overhead,
	// packed into a single aligned slab region.
	BlockCount = 1024

	// BlockCacheLimit is the maximum number of blocks a thread cache will
	// hold in its fastbin before overflowing to the owning slab.
	BlockCacheLimit = 64

	// BlockCacheRefillLimit is the number of blocks moved from a slab's
	// free list into the fastbin in one batched refill.
	BlockCacheRefillLimit = 32
)

// Alignment is both the size and the required alignment of a slab's backing
// region. Masking any block address with ^(Alignment-1) recovers the start
// of its owning region.
const Alignment = BlockSize * BlockCount

// HeaderSize is the size in bytes of the Header struct placed at the start
// of every slab region.
const HeaderSize = unsafe.Sizeof(Header{})

// SlabOverhead is the number of blocks consumed by the Header,
// ceil(HeaderSize / BlockSize).
const SlabOverhead = (HeaderSize + BlockSize - 1) / BlockSize

// EffectiveBlocks is the number of blocks available for allocation in each
// slab, after the header's overhead is subtracted.
const EffectiveBlocks = uint64(BlockCount - SlabOverhead)

func init() {
	// These constants are fixed at compile time; this is a cheap
	// self-check that the derived layout still makes sense, following
	// the same belt-and-braces style as allocation_config.go's use of
	// fmath to keep derived sizes sane.
	if fmath.NxtPowerOfTwo(int64(BlockSize)) != int64(BlockSize) {
		panic("slab: BlockSize must be a power of two")
	}
	if fmath.NxtPowerOfTwo(int64(BlockCount)) != int64(BlockCount) {
		panic("slab: BlockCount must be a power of two")
	}
	if SlabOverhead == 0 {
		panic("slab: SlabOverhead must be at least one block")
	}
	if EffectiveBlocks == 0 || EffectiveBlocks >= BlockCount {
		panic("slab: EffectiveBlocks out of range")
	}
}
