// Package diff provides single-shot numerical differentiation of scalar
// real functions: the general stepped central/forward/backward family and
// the three-point divided-difference family. All routines are closed-form
// and non-iterative.
package diff

import (
	"math"

	"github.com/Luna-Flow/calculus-numerical/quad"
)

// cbrtEpsilon is the classical optimal step scale for first-order
// central differences, eps^(1/3).
const cbrtEpsilon = 6.0554544523933429e-6

// stepFor picks a step proportional to the magnitude of x, so that x+h
// and x-h differ from x by exactly representable amounts.
func stepFor(x float64) float64 {
	scale := math.Abs(x)
	if scale < 1 {
		scale = 1
	}

	h := cbrtEpsilon * scale

	// force h to a representable difference
	temp := x + h
	return temp - x
}

// Central estimates f'(x) by the symmetric difference quotient
// (f(x+h) - f(x-h)) / 2h with an automatically chosen step.
func Central(f quad.Function, x float64) float64 {
	h := stepFor(x)
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Forward estimates f'(x) using points at and above x only.
func Forward(f quad.Function, x float64) float64 {
	h := stepFor(x)
	return (f(x+h) - f(x)) / h
}

// Backward estimates f'(x) using points at and below x only.
func Backward(f quad.Function, x float64) float64 {
	h := stepFor(x)
	return (f(x) - f(x-h)) / h
}

// CentralStep is Central with a caller-chosen step.
func CentralStep(f quad.Function, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// ForwardStep is Forward with a caller-chosen step.
func ForwardStep(f quad.Function, x, h float64) float64 {
	return (f(x+h) - f(x)) / h
}

// BackwardStep is Backward with a caller-chosen step.
func BackwardStep(f quad.Function, x, h float64) float64 {
	return (f(x) - f(x-h)) / h
}

//-- three-point divided-difference family
//
// Each variant fits the parabola through three equally spaced samples and
// differentiates it at x. The central form is second-order accurate; the
// one-sided forms trade accuracy for staying on one side of x.

// ThreePointCentral estimates f'(x) from samples at x-h, x, x+h.
func ThreePointCentral(f quad.Function, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// ThreePointForward estimates f'(x) from samples at x, x+h, x+2h.
func ThreePointForward(f quad.Function, x, h float64) float64 {
	return (-3*f(x) + 4*f(x+h) - f(x+2*h)) / (2 * h)
}

// ThreePointBackward estimates f'(x) from samples at x-2h, x-h, x.
func ThreePointBackward(f quad.Function, x, h float64) float64 {
	return (3*f(x) - 4*f(x-h) + f(x-2*h)) / (2 * h)
}

// SecondDerivative estimates the second derivative of f at x from the
// same three central samples.
func SecondDerivative(f quad.Function, x, h float64) float64 {
	return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
}
