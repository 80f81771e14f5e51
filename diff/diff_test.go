package diff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentral(t *testing.T) {
	square := func(x float64) float64 { return x * x }

	assert.InDelta(t, 6.0, Central(square, 3), 1e-8)
	assert.InDelta(t, 0.0, Central(square, 0), 1e-8)
	assert.InDelta(t, math.Cos(1), Central(math.Sin, 1), 1e-8)
}

func TestForwardBackward(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }

	// one-sided quotients are first order; expect cruder results
	assert.InDelta(t, 12.0, Forward(cube, 2), 1e-4)
	assert.InDelta(t, 12.0, Backward(cube, 2), 1e-4)
}

func TestSteppedVariants(t *testing.T) {
	h := 1e-5

	assert.InDelta(t, math.Cos(0.5), CentralStep(math.Sin, 0.5, h), 1e-9)
	assert.InDelta(t, math.Cos(0.5), ForwardStep(math.Sin, 0.5, h), 1e-4)
	assert.InDelta(t, math.Cos(0.5), BackwardStep(math.Sin, 0.5, h), 1e-4)
}

func TestThreePointFamily(t *testing.T) {
	// the three-point formulas differentiate any parabola exactly,
	// up to roundoff in the samples
	parab := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	deriv := func(x float64) float64 { return 4*x - 3 }
	h := 1e-4

	for _, x := range []float64{-2, 0, 0.5, 3} {
		assert.InDelta(t, deriv(x), ThreePointCentral(parab, x, h), 1e-6, "central at %g", x)
		assert.InDelta(t, deriv(x), ThreePointForward(parab, x, h), 1e-6, "forward at %g", x)
		assert.InDelta(t, deriv(x), ThreePointBackward(parab, x, h), 1e-6, "backward at %g", x)
	}
}

func TestSecondDerivative(t *testing.T) {
	assert.InDelta(t, -math.Sin(1), SecondDerivative(math.Sin, 1, 1e-4), 1e-6)
	assert.InDelta(t, 4.0, SecondDerivative(func(x float64) float64 { return 2 * x * x }, 7, 1e-4), 1e-4)
}
