package problems

import (
	"math"

	"github.com/Luna-Flow/calculus-numerical/quad"
)

// Problem is an integrand over a finite interval with a known exact
// integral, used to exercise the quadrature rules and the adaptive driver.
type Problem struct {
	Name string
	A, B float64

	// Exact is the true value of the integral over [A,B]
	Exact float64

	Fcn quad.Function
}

// NewOscillatory builds sin(k*x) over [0,pi].
// Larger k forces the driver to subdivide more.
func NewOscillatory(k float64) Problem {
	return Problem{
		Name:  "sin(kx)",
		A:     0,
		B:     math.Pi,
		Exact: (1 - math.Cos(k*math.Pi)) / k,
		Fcn:   func(x float64) float64 { return math.Sin(k * x) },
	}
}

// NewPeak builds 1/(x^2+a^2) over [-1,1], a narrow peak at the origin
// for small a.
func NewPeak(a float64) Problem {
	return Problem{
		Name:  "1/(x^2+a^2)",
		A:     -1,
		B:     1,
		Exact: 2 * math.Atan(1/a) / a,
		Fcn:   func(x float64) float64 { return 1 / (x*x + a*a) },
	}
}

// Smooth returns well-behaved integrands every rule should handle at
// tight tolerances without many bisections.
func Smooth() []Problem {
	return []Problem{
		{
			Name:  "x^2",
			A:     0,
			B:     1,
			Exact: 1.0 / 3.0,
			Fcn:   func(x float64) float64 { return x * x },
		},
		{
			Name:  "exp(x)",
			A:     0,
			B:     1,
			Exact: math.E - 1,
			Fcn:   math.Exp,
		},
		{
			Name:  "1/(1+25x^2)",
			A:     -1,
			B:     1,
			Exact: 2.0 / 5.0 * math.Atan(5),
			Fcn:   func(x float64) float64 { return 1 / (1 + 25*x*x) },
		},
		NewOscillatory(10),
		NewPeak(0.1),
	}
}

// Singular returns integrands with an integrable endpoint singularity.
// The rules never evaluate at the interval endpoints themselves, but the
// error estimates decay slowly and the driver piles subdivisions against
// the singular end.
func Singular() []Problem {
	return []Problem{
		{
			Name:  "1/sqrt(x)",
			A:     0,
			B:     1,
			Exact: 2,
			Fcn:   func(x float64) float64 { return 1 / math.Sqrt(x) },
		},
		{
			Name:  "log(x)",
			A:     0,
			B:     1,
			Exact: -1,
			Fcn:   math.Log,
		},
	}
}
