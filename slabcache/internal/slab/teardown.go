// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

// ReleaseAll is the thread-exit destructor: for every slab reachable from
// current and from partial, release its raw allocation back to the system
// allocator. Blocks sitting in the fastbin need no separate handling —
// they belong to slabs this same cache owns (or has adopted), and are
// released together with those slabs.
//
// Any slab whose ownership migrated to a different cache via a
// cross-thread free is, by construction, no longer reachable from this
// cache's current/partial lists, so it is untouched here and remains valid
// for its new owner.
//
// ReleaseAll keeps going after a failed release and returns the first error
// encountered, mirroring pointerstore.Store.Destroy's "give up but don't
// make things worse" stance — there is little to be done about a failed
// munmap beyond reporting it.
func (c *LocalCache) ReleaseAll() error {
	var firstErr error

	release := func(region uintptr) {
		h := headerAt(region)
		if err := ReleaseRegion(h.rawAlloc, int(h.rawLen)); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.current != 0 {
		release(c.current)
		c.current = 0
	}

	for c.partial != 0 {
		h := headerAt(c.partial)
		next := h.next
		release(c.partial)
		c.partial = next
	}

	c.liveSlabs = 0

	return firstErr
}
