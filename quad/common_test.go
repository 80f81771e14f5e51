package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRescaleErrorNonNegative(t *testing.T) {
	cases := []struct{ err, abs, asc float64 }{
		{0, 0, 0},
		{-1e-3, 1.0, 1e-2},
		{1e-3, 1.0, 1e-2},
		{-5, 100, 0},
		{1e-300, 1e-300, 1e-300},
		{0.5, 1e308, 2},
	}

	for _, c := range cases {
		got := RescaleError(c.err, c.abs, c.asc)
		assert.GreaterOrEqual(t, got, 0.0, "rescale(%g,%g,%g)", c.err, c.abs, c.asc)
	}
}

func TestRescaleErrorMonotoneInErr(t *testing.T) {
	const abs, asc = 1.0, 1e-2

	prev := RescaleError(0, abs, asc)
	for e := 1e-12; e < 1e-1; e *= 10 {
		cur := RescaleError(e, abs, asc)
		assert.GreaterOrEqual(t, cur, prev, "err=%g", e)
		prev = cur
	}
}

func TestRescaleErrorCapsAtAsc(t *testing.T) {
	// 200*err/asc = 200 >> 1, so the scale saturates and the estimate
	// is exactly the deviation signal
	got := RescaleError(1e-2, 0, 1e-2)
	assert.Equal(t, 1e-2, got)
}

func TestRescaleErrorBlowsUpSmallDifferences(t *testing.T) {
	// near-polynomial integrand: tiny kronrod-gauss difference, sizable asc
	err, asc := 1e-12, 1e-3
	got := RescaleError(err, 0, asc)

	scale := math.Pow(200*err/asc, 1.5)
	assert.InDelta(t, asc*scale, got, 1e-25)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, asc)
}

func TestRescaleErrorRoundoffFloor(t *testing.T) {
	// the floor is 50*eps*resultAbs when the raw estimate sits below it
	got := RescaleError(1e-30, 1.0, 0)
	assert.Equal(t, 50*dblEpsilon, got)
}

func TestSubintervalTooSmall(t *testing.T) {
	assert.False(t, subintervalTooSmall(0, 1, 2))
	assert.True(t, subintervalTooSmall(1e-300, 1e-300, 1e-300))

	// ordinary bisection geometry is never degenerate
	assert.False(t, subintervalTooSmall(0.5, 0.75, 1.0))

	// a collapsed interval around a large midpoint is
	assert.True(t, subintervalTooSmall(1e6, 1e6, 1e6))
}
