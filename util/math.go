package util

import "math"

func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Clamp limits x to the interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sum adds up the entries of x in index order.
// The order matters for floating point reproducibility; do not reorder.
func Sum(x []float64) (s float64) {
	for i := range x {
		s += x[i]
	}
	return
}

// PowInt computes x^n for integer n by repeated squaring.
func PowInt(x float64, n int) float64 {
	if n < 0 {
		return 1 / PowInt(x, -n)
	}

	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// Sqrt computes the square root of x by Newton iteration.
// Negative input yields NaN, mirroring math.Sqrt.
func Sqrt(x float64) float64 {
	if x < 0 {
		return math.NaN()
	}
	if x == 0 || math.IsInf(x, 1) || math.IsNaN(x) {
		return x
	}

	// start above the root so the iteration decreases monotonically
	z := x
	if z < 1 {
		z = 1
	}
	for {
		next := 0.5 * (z + x/z)
		if next >= z {
			return z
		}
		z = next
	}
}

func EpsEqual(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

func ArrayEpsEqual(x, y []float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !EpsEqual(x[i], y[i], eps) {
			return false
		}
	}
	return true
}
