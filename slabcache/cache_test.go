// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slabcache_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/fmstephe/slabcache/slabcache"
)

func TestAllocFreeRoundTrip(t *testing.T) {
	c := slabcache.NewCache()
	defer c.Close()

	ptr, err := c.Alloc()
	assert.NoError(t, err)
	assert.NotNil(t, ptr)

	c.Free(ptr)

	stats := c.Stats()
	assert.EqualValues(t, 1, stats.Allocs)
	assert.EqualValues(t, 1, stats.Frees)
	assert.EqualValues(t, 0, stats.Live)
}

func TestAllocIsWritable(t *testing.T) {
	c := slabcache.NewCache()
	defer c.Close()

	ptr, err := c.Alloc()
	assert.NoError(t, err)

	buf := (*[64]byte)(ptr)
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		assert.Equal(t, byte(i), buf[i])
	}
}

func TestNoDuplicateLiveAddresses(t *testing.T) {
	c := slabcache.NewCache()
	defer c.Close()

	const n = 4096
	seen := make(map[unsafe.Pointer]bool, n)
	ptrs := make([]unsafe.Pointer, 0, n)

	for i := 0; i < n; i++ {
		ptr, err := c.Alloc()
		assert.NoError(t, err)
		assert.False(t, seen[ptr])
		seen[ptr] = true
		ptrs = append(ptrs, ptr)
	}

	for _, ptr := range ptrs {
		c.Free(ptr)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := slabcache.NewCache()
	_, err := c.Alloc()
	assert.NoError(t, err)

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestCrossCacheFreeIsAccepted(t *testing.T) {
	producer := slabcache.NewCache()
	defer producer.Close()
	consumer := slabcache.NewCache()
	defer consumer.Close()

	ptr, err := producer.Alloc()
	assert.NoError(t, err)

	// One goroutine allocates, hands the pointer to another, which
	// frees it ("cross-thread free").
	consumer.Free(ptr)

	assert.EqualValues(t, 1, consumer.Stats().Frees)
	assert.EqualValues(t, 0, producer.Stats().Frees)
}
