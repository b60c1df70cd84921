package statmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeStaysInBounds(t *testing.T) {
	g := New(42)
	for i := 0; i < 1000; i++ {
		v := g.Range(5, 20)
		if v < 5 || v > 20 {
			t.Fatalf("Range(5,20) produced %d", v)
		}
	}
}

func TestRangeDegenerateBounds(t *testing.T) {
	g := New(1)
	assert.Equal(t, 7, g.Range(7, 7))
	// swapped bounds are tolerated
	for i := 0; i < 100; i++ {
		v := g.Range(10, 3)
		if v < 3 || v > 10 {
			t.Fatalf("Range(10,3) produced %d", v)
		}
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Range(0, 1000), b.Range(0, 1000))
	}
}

func TestChanceExtremes(t *testing.T) {
	g := New(3)
	for i := 0; i < 100; i++ {
		assert.False(t, g.Chance(0))
		assert.False(t, g.Chance(-0.5))
		assert.True(t, g.Chance(1))
		assert.True(t, g.Chance(1.5))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 0, ClampFloor(-1, 0))
	assert.Equal(t, 7, ClampFloor(7, 0))
}

func TestApportionSumsExactly(t *testing.T) {
	cases := []struct {
		total, parts int
	}{
		{10, 3}, {7, 7}, {1, 4}, {0, 5}, {-10, 3}, {-1, 4}, {23, 8}, {-23, 8},
	}
	for _, tc := range cases {
		shares := Apportion(tc.total, tc.parts)
		require.Len(t, shares, tc.parts, "total=%d parts=%d", tc.total, tc.parts)

		sum := 0
		lo, hi := shares[0], shares[0]
		for _, s := range shares {
			sum += s
			if s < lo {
				lo = s
			}
			if s > hi {
				hi = s
			}
		}
		assert.Equal(t, tc.total, sum, "total=%d parts=%d", tc.total, tc.parts)
		assert.LessOrEqual(t, hi-lo, 1, "shares must differ by at most one: %v", shares)
	}
}

func TestApportionRemainderLeadsTheSchedule(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, Apportion(10, 3))
	assert.Equal(t, []int{-4, -3, -3}, Apportion(-10, 3))
}

func TestApportionNoParts(t *testing.T) {
	assert.Nil(t, Apportion(10, 0))
	assert.Nil(t, Apportion(10, -1))
}
