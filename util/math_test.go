package util

import (
	"math"
	"testing"
)

func TestMinMax(t *testing.T) {
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max broken")
	}
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min broken")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ x, lo, hi, want float64 }{
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{7, 0, 1, 1},
		{0, 0, 1, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%g,%g,%g) = %g, want %g", c.x, c.lo, c.hi, got, c.want)
		}
	}
}

func TestSum(t *testing.T) {
	if Sum(nil) != 0 {
		t.Error("empty sum should be zero")
	}
	if got := Sum([]float64{1, 2, 3, 4}); got != 10 {
		t.Errorf("Sum = %g, want 10", got)
	}
}

func TestPowInt(t *testing.T) {
	if got := PowInt(2, 10); got != 1024 {
		t.Errorf("PowInt(2,10) = %g", got)
	}
	if got := PowInt(3, 0); got != 1 {
		t.Errorf("PowInt(3,0) = %g", got)
	}
	if got := PowInt(2, -2); got != 0.25 {
		t.Errorf("PowInt(2,-2) = %g", got)
	}
	if got := PowInt(-2, 3); got != -8 {
		t.Errorf("PowInt(-2,3) = %g", got)
	}
}

func TestSqrt(t *testing.T) {
	for _, x := range []float64{0, 1e-10, 0.25, 1, 2, 1e10} {
		if got, want := Sqrt(x), math.Sqrt(x); !EpsEqual(got, want, 1e-12*math.Max(1, want)) {
			t.Errorf("Sqrt(%g) = %.17g, want %.17g", x, got, want)
		}
	}
	if !math.IsNaN(Sqrt(-1)) {
		t.Error("Sqrt(-1) should be NaN")
	}
}

func TestEpsEqual(t *testing.T) {
	if !EpsEqual(1.0, 1.0+1e-12, 1e-9) {
		t.Error("values within eps should compare equal")
	}
	if EpsEqual(1.0, 1.1, 1e-9) {
		t.Error("values outside eps should compare unequal")
	}
	if !ArrayEpsEqual([]float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9) {
		t.Error("arrays within eps should compare equal")
	}
	if ArrayEpsEqual([]float64{1}, []float64{1, 2}, 1e-9) {
		t.Error("arrays of different length are unequal")
	}
}
