package gk

import (
	"math"
	"testing"

	. "github.com/Luna-Flow/calculus-numerical/quad"
	quadtesting "github.com/Luna-Flow/calculus-numerical/quad/testing"
)

func TestAllGK(t *testing.T) {
	rules := make([]Rule, NumberOfGKMethods)
	for j := 0; j < int(NumberOfGKMethods); j++ {
		r, err := NewGK(GKMethod(j))
		if err != nil {
			t.Errorf("Couldn't create GK method %d: %s", j, err.Error())
		} else {
			rules[j] = r
		}
	}

	quadtesting.RunRuleTests(t, rules)
	quadtesting.RunAdaptiveTests(t, rules)
}

func TestNewGKUnknown(t *testing.T) {
	_, err := NewGK(GKMethod(NumberOfGKMethods))
	if err == nil {
		t.Error("expected an error for an unknown method")
	}
}

func TestRuleInfo(t *testing.T) {
	expected := []struct {
		gauss, kronrod uint
	}{
		{7, 15}, {10, 21}, {15, 31}, {20, 41}, {25, 51}, {30, 61},
	}

	for j, e := range expected {
		r, _ := NewGK(GKMethod(j))
		info := r.Info()
		if info.GaussPoints != e.gauss || info.KronrodPoints != e.kronrod {
			t.Errorf("%s: got %d-%d point pair, want %d-%d",
				info.Name, info.GaussPoints, info.KronrodPoints, e.gauss, e.kronrod)
		}
		if uint(2*len(tableFor(GKMethod(j)))-1) != e.kronrod {
			t.Errorf("%s: table has %d half nodes", info.Name, len(tableFor(GKMethod(j))))
		}
	}
}

func tableFor(m GKMethod) []float64 {
	switch m {
	case GK15:
		return xgk15
	case GK21:
		return xgk21
	case GK31:
		return xgk31
	case GK41:
		return xgk41
	case GK51:
		return xgk51
	case GK61:
		return xgk61
	}
	return nil
}

// a Kronrod extension of an n-point Gauss rule is exact for polynomials
// of degree 3n+1; x^5 is well inside that for every member of the family
func TestPolynomialExactness(t *testing.T) {
	f := func(x float64) float64 { return x * x * x * x * x }
	exact := 64.0 / 6.0 // integral of x^5 over [0,2]

	evaluators := []func(Function, float64, float64) RuleResult{
		Kronrod15, Kronrod21, Kronrod31, Kronrod41, Kronrod51, Kronrod61,
	}

	for i, q := range evaluators {
		res := q(f, 0, 2)
		if math.Abs(res.Value-exact) > 1e-12 {
			t.Errorf("rule %d: x^5 over [0,2] = %.16f, want %.16f", i, res.Value, exact)
		}
	}
}

func TestWeightsSumToIntervalLength(t *testing.T) {
	one := func(x float64) float64 { return 1 }

	evaluators := []func(Function, float64, float64) RuleResult{
		Kronrod15, Kronrod21, Kronrod31, Kronrod41, Kronrod51, Kronrod61,
	}

	for i, q := range evaluators {
		res := q(one, -3, 5)
		if math.Abs(res.Value-8) > 1e-12 {
			t.Errorf("rule %d: integral of 1 over [-3,5] = %.16f, want 8", i, res.Value)
		}
		// constants deviate from their mean only by table roundoff
		if res.AscEstimate > 1e-12 {
			t.Errorf("rule %d: asc estimate %g for a constant", i, res.AscEstimate)
		}
	}
}

func TestReversedInterval(t *testing.T) {
	res := Kronrod21(math.Exp, 1, 0)
	if math.Abs(res.Value-(1-math.E)) > 1e-12 {
		t.Errorf("reversed interval: got %.16f, want %.16f", res.Value, 1-math.E)
	}
}
