// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

import "unsafe"

// A free Block overlaps its user payload with a single link field: while
// free, the first machine word of the block holds the address of the next
// free block (or 0 for nil). Once allocated, the block's bytes are opaque
// user data and these functions are never called on it again until it is
// freed.

// readNext reads the free-list link stored in a free block.
func readNext(blockAddr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(blockAddr))
}

// writeNext stores the free-list link in a free block.
func writeNext(blockAddr uintptr, next uintptr) {
	*(*uintptr)(unsafe.Pointer(blockAddr)) = next
}
