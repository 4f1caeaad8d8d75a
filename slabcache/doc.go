// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

// # Usage
//
// Package slabcache implements a fixed-size-block slab allocator with
// thread-local caching. It is built for the common pattern of many small,
// same-sized allocations in multi-threaded workloads, where it outperforms
// the general-purpose allocator by avoiding cross-thread synchronization in
// the steady state.
//
// Every allocation is a fixed 64-byte block. There is no support for
// variable-sized allocations, alignment beyond the block size, or realloc.
//
// Each goroutine that wants the fast, lock-free path creates its own Cache
// and uses it for as long as that goroutine is doing allocator-heavy work:
//
//	c := slabcache.NewCache()
//	defer c.Close()
//
//	ptr, err := c.Alloc()
//	if err != nil {
//		// out of memory
//	}
//
//	c.Free(ptr)
//	// You must never use ptr again
//
// A Cache must never be used from more than one goroutine at a time: its
// entire purpose is to avoid synchronization by assuming exclusive,
// thread-local ownership of its state. Blocks may, however, be freed on a
// different Cache than the one that allocated them. Close on the
// allocating Cache unmaps every slab still on its current and partial
// lists, so blocks from those slabs that are still held by a caller, or
// sitting in another Cache's fastbin, are no longer valid once it returns.
//
// Go has no language-level hook for "this OS thread just exited" the way
// pthread_key_create's destructor does. Cache.Close is the explicit
// equivalent: call it when a goroutine is done using its Cache, and its
// slabs are returned to the system allocator immediately. As a backstop
// against a forgotten Close, a Cache also registers a finalizer that calls
// Close when the Cache value itself is garbage collected — this is
// best-effort only and fires at an unspecified time, so it should not be
// relied upon for timely memory release.
package slabcache
