// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapFunc is the raw mmap call AllocateRegion uses to obtain backing
// memory. It defaults to golang.org/x/sys/unix's Mmap and is a package
// variable, not a direct call, so tests can substitute a failing stand-in
// to exercise the out-of-memory path without actually exhausting system
// memory.
var MmapFunc = unix.Mmap

// AllocateRegion obtains backing memory from the system allocator and
// returns both the raw (unaligned) address mmap handed back, and the
// aligned address inside it where a slab region of size Alignment begins.
// rawLen is the size of the raw allocation, needed later to munmap it.
//
// This is golang.org/x/sys/unix's raw mmap, exactly as MmapSlab uses it.
func AllocateRegion() (raw, aligned uintptr, rawLen int, err error) {
	// Request double the alignment so that, no matter where the kernel
	// places the mapping, there is enough slack to round up to the next
	// Alignment boundary and still have a full region left over.
	rawLen = 2 * Alignment

	data, mmapErr := MmapFunc(-1, 0, rawLen, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if mmapErr != nil {
		return 0, 0, 0, fmt.Errorf("slab: mmap failed for %d bytes: %w", rawLen, mmapErr)
	}

	raw = uintptr(unsafe.Pointer(&data[0]))
	aligned = (raw + Alignment - 1) &^ uintptr(Alignment-1)

	return raw, aligned, rawLen, nil
}

// ReleaseRegion returns a raw allocation obtained from AllocateRegion back
// to the system allocator. This is only ever called from thread-cache
// teardown — never from the hot alloc/free path.
func ReleaseRegion(raw uintptr, rawLen int) error {
	b := bytesAt(raw, rawLen)
	return unix.Munmap(b)
}

func bytesAt(addr uintptr, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}
