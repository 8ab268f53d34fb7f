// This file provides pooled scratch space for division and multiplication.

package limb

import (
	"math/bits"
	"sync"
)

// scratchPools pools []Limb slices by size class. Sizes are powers of 4
// starting at 16 limbs.
var scratchPools = [...]sync.Pool{
	{New: func() any { return make([]Limb, 16) }},
	{New: func() any { return make([]Limb, 64) }},
	{New: func() any { return make([]Limb, 256) }},
	{New: func() any { return make([]Limb, 1024) }},
	{New: func() any { return make([]Limb, 4096) }},
	{New: func() any { return make([]Limb, 16384) }},
	{New: func() any { return make([]Limb, 65536) }},
}

var scratchSizes = [...]int{16, 64, 256, 1024, 4096, 16384, 65536}

// scratchPoolIndex returns the pool index for a given size, or -1 if the size
// is too large for pooling.
//
// Index i holds slices of 4^(i+2) limbs, so bits.Len(size-1) maps directly
// to the index.
func scratchPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 3) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// scratchPoolIndexLinear is the linear-search reference for scratchPoolIndex.
func scratchPoolIndexLinear(size int) int {
	for i, s := range scratchSizes {
		if size <= s {
			return i
		}
	}
	return -1
}

// AcquireScratch returns a zeroed slice of exactly size limbs. Release it with
// ReleaseScratch once it is no longer referenced:
//
//	buf := limb.AcquireScratch(n)
//	defer limb.ReleaseScratch(buf)
func AcquireScratch(size int) []Limb {
	idx := scratchPoolIndex(size)
	if idx < 0 {
		return make([]Limb, size)
	}
	s := scratchPools[idx].Get().([]Limb)
	clear(s)
	return s[:size]
}

// ReleaseScratch returns a slice obtained from AcquireScratch to its pool.
// Slices whose capacity does not match a size class are left to the GC.
// Safe to call with nil.
func ReleaseScratch(s []Limb) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := scratchPoolIndex(c)
	if idx >= 0 && scratchSizes[idx] == c {
		scratchPools[idx].Put(s[:c])
	}
}
