// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slabcache

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/fmstephe/slabcache/slabcache/internal/slab"
)

// Cache is a thread-local allocation cache. It must be created and used by
// a single goroutine; it holds no locks and performs no atomic operations,
// which is only safe because nothing else ever touches it at the same
// time.
//
// The zero value is not usable; construct with NewCache.
type Cache struct {
	local  slab.LocalCache
	closed bool
}

// NewCache creates a new, empty thread-local cache. Construction is lazy:
// no slab is mapped until the first Alloc or Free actually needs one.
func NewCache() *Cache {
	c := &Cache{}
	runtime.SetFinalizer(c, (*Cache).finalize)
	return c
}

// Alloc acquires one 64-byte block. The returned pointer is uniquely owned
// by the caller until passed to Free, on this Cache or any other. It
// returns an error wrapping ErrOutOfMemory if the system allocator could
// not service a fresh-slab request, the only recoverable failure this
// package produces.
func (c *Cache) Alloc() (unsafe.Pointer, error) {
	addr, err := slab.Alloc(&c.local)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	return unsafe.Pointer(addr), nil
}

// Free releases one block previously returned by Alloc on this Cache or any
// other Cache in the process, and not yet freed. Double-free, freeing a
// foreign or interior pointer, and use-after-free are all undefined
// behaviour, not detected here.
func (c *Cache) Free(p unsafe.Pointer) {
	slab.Free(&c.local, uintptr(p))
}

// Stats returns this Cache's allocation statistics.
func (c *Cache) Stats() slab.Stats {
	return c.local.Stats()
}

// Close releases every slab this Cache owns back to the system allocator.
// The Cache must not be used after Close. Close is idempotent.
func (c *Cache) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	runtime.SetFinalizer(c, nil)
	return c.local.ReleaseAll()
}

// finalize is the backstop destructor registered in NewCache; see doc.go.
func (c *Cache) finalize() {
	// There is no caller left to report a munmap failure to here, and a
	// finalizer that panics takes the whole program down with it. Like
	// pointerstore.Store.Destroy, we give up quietly: the only useful
	// response to an unrecoverable munmap failure is to exit the
	// process, which is not this function's call to make.
	_ = c.Close()
}
