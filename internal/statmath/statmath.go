// Package statmath provides the numeric plumbing shared by the whole
// simulation: a seeded uniform RNG, inclusive integer ranges, clamping and
// deterministic apportioning of a total across hours.
package statmath

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// RNG wraps a seeded PRNG. Non-cryptographic by design: the simulation wants
// reproducible runs for a given seed.
type RNG struct {
	r *rand.Rand
}

// New returns an RNG seeded deterministically from seed.
func New(seed int64) *RNG {
	// #nosec G404
	return &RNG{r: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))}
}

// NewFromTime returns an RNG seeded from the wall clock.
func NewFromTime() *RNG {
	return New(time.Now().UnixNano())
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}

// Range returns a uniform integer in [min, max] inclusive. Swapped bounds
// are tolerated; equal bounds return the bound.
func (g *RNG) Range(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + g.r.IntN(max-min+1)
}

// Chance rolls once against probability p in [0,1].
func (g *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

// Float64 exposes the underlying uniform [0,1) draw.
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloor bounds v below by lo only.
func ClampFloor(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

// Apportion splits total into parts integer shares that sum exactly to
// total. The remainder is spread one unit at a time over the leading shares,
// so shares differ by at most one. Works for negative totals.
func Apportion(total, parts int) []int {
	if parts <= 0 {
		return nil
	}
	base := total / parts
	rem := total - base*parts
	step := 1
	if rem < 0 {
		step = -1
		rem = -rem
	}
	out := make([]int, parts)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i] += step
		}
	}
	return out
}
