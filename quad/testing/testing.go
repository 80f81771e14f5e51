// Package testing provides a shared quadrature test suite, run against
// every rule by the package tests in quad and quad/gk.
package testing

import (
	"math"
	"testing"

	"github.com/Luna-Flow/calculus-numerical/problems"
	. "github.com/Luna-Flow/calculus-numerical/quad"
	"github.com/Luna-Flow/calculus-numerical/util"
)

// RunRuleTests checks that each rule reproduces the exact value of every
// smooth catalog integrand in a single evaluation, and that its error
// estimate actually bounds the true error.
func RunRuleTests(t *testing.T, rules []Rule) {
	for _, r := range rules {
		if r == nil {
			continue
		}
		info := r.Info()

		for _, p := range problems.Smooth() {
			res := r.Evaluate(p.Fcn, p.A, p.B)
			trueErr := math.Abs(res.Value - p.Exact)

			// a single application of a fixed rule is not adaptive;
			// only require the estimate to be honest about itself
			if trueErr > res.ErrorEstimate && trueErr > 1e-10 {
				t.Errorf("%s on %s: true error %g exceeds estimate %g",
					info.Name, p.Name, trueErr, res.ErrorEstimate)
			}
			if res.ErrorEstimate < 0 {
				t.Errorf("%s on %s: negative error estimate %g",
					info.Name, p.Name, res.ErrorEstimate)
			}
			if testing.Verbose() {
				t.Logf("%s\t%s\tvalue %.15f\texact %.15f\testimate %.2e",
					info.Name, p.Name, res.Value, p.Exact, res.ErrorEstimate)
			}
		}
	}
}

// RunAdaptiveTests drives AdaptiveIntegrate over the smooth catalog with
// each rule and checks convergence to the exact values.
func RunAdaptiveTests(t *testing.T, rules []Rule) {
	var eps = 1e-8

	for _, r := range rules {
		if r == nil {
			continue
		}
		info := r.Info()

		if testing.Verbose() {
			t.Logf("%s\tProblem\tValue\tAbsErr\tBisect\tEval", info.Name)
		}

		for _, p := range problems.Smooth() {
			cfg := Config{
				AbsoluteTolerance: 1e-10,
				RelativeTolerance: 1e-10,
				Limit:             100,
			}

			res, stat, err := AdaptiveIntegrate(p.Fcn, r, p.A, p.B, &cfg)

			if err != nil {
				t.Errorf("%s on %s: %s", info.Name, p.Name, err.Error())
				continue
			}
			if res.Status != StatusOK {
				t.Errorf("%s on %s: status %v", info.Name, p.Name, res.Status)
			}
			if !util.EpsEqual(res.Value, p.Exact, eps) {
				t.Errorf("%s on %s: expected %.15f but result was %.15f",
					info.Name, p.Name, p.Exact, res.Value)
			}
			if testing.Verbose() {
				t.Logf(" \t%s\t%.12f\t%.2e\t%d\t%d",
					p.Name, res.Value, res.AbsError, stat.Bisections, stat.Evaluations)
			}
		}
	}
}
