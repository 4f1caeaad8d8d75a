// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slabcache

import "errors"

// ErrOutOfMemory is returned by Cache.Alloc, wrapped around the underlying
// mmap failure, when the system allocator refuses a fresh-slab request. It
// is the only recoverable error this package produces; misuse (double
// free, foreign pointer, interior pointer, use-after-free) is undefined
// behaviour that the core does not detect on the hot path.
var ErrOutOfMemory = errors.New("slabcache: out of memory")
