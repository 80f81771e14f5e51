package quad

import "math"

// DefaultLimit is the subdivision budget used when Config.Limit is zero.
const DefaultLimit = 50

// -- performs adaptive Gauss-Kronrod integration of f over [a,b]
//
// The subinterval with the largest error estimate is bisected repeatedly
// until the accumulated error drops below max(epsabs, epsrel*|area|), the
// subdivision budget runs out, or the error estimates are found to be
// dominated by roundoff or a singularity.
//
// Only StatusBadTolerance (and the internal StatusFailed) produce a non-nil
// error; all other non-OK statuses still return a best-effort estimate and
// leave the severity policy to the caller.
func AdaptiveIntegrate(f Function, r Rule, a, b float64, c *Config) (res Result, stat Statistics, err error) {
	// set default parameters if necessary
	if c == nil {
		c = &Config{}
	}
	limit := int(c.Limit)
	if limit <= 0 {
		limit = DefaultLimit
	}
	epsabs, epsrel := c.AbsoluteTolerance, c.RelativeTolerance

	points := r.Info().KronrodPoints

	if epsabs <= 0 && (epsrel < 50*dblEpsilon || epsrel < 0.5e-28) {
		res.Status = StatusBadTolerance
		err = ErrBadTolerance
		return
	}

	// perform the first integration over the whole domain
	first := r.Evaluate(f, a, b)
	result0, abserr0 := first.Value, first.ErrorEstimate
	resabs0, resasc0 := first.AbsEstimate, first.AscEstimate
	stat.Evaluations = points

	w := newWorkspace(limit)
	w.initialize(a, b, result0, abserr0)

	tolerance := math.Max(epsabs, epsrel*math.Abs(result0))
	stat.Tolerance = tolerance

	roundOff := 50 * dblEpsilon * resabs0

	if abserr0 <= roundOff && abserr0 > tolerance {
		// cannot reach tolerance because of roundoff on the first attempt
		res = Result{Value: result0, AbsError: abserr0, Status: StatusRoundoffLimited}
		return
	} else if (abserr0 <= tolerance && abserr0 != resasc0) || abserr0 == 0.0 {
		res = Result{Value: result0, AbsError: abserr0, Status: StatusOK}
		return
	} else if limit == 1 {
		// a budget of one means no bisection was allowed
		res = Result{Value: result0, AbsError: abserr0, Status: StatusBudgetExhausted}
		return
	}

	area := result0
	errSum := abserr0

	iteration := 1
	roundoffType1, roundoffType2 := 0, 0
	errorType := StatusOK

	for {
		// bisect the subinterval with the largest error estimate
		aI, bI, rI, eI := w.retrieveWorst()

		a1 := aI
		b1 := 0.5 * (aI + bI)
		a2 := b1
		b2 := bI

		left := r.Evaluate(f, a1, b1)
		right := r.Evaluate(f, a2, b2)
		stat.Evaluations += 2 * points
		stat.Bisections++

		area1, error1 := left.Value, left.ErrorEstimate
		area2, error2 := right.Value, right.ErrorEstimate

		area12 := area1 + area2
		error12 := error1 + error2

		errSum += error12 - eI
		area += area12 - rI

		// count the symptoms of error estimates that refuse to improve,
		// but only when neither child sits on the roundoff floor
		if left.AscEstimate != error1 && right.AscEstimate != error2 {
			delta := rI - area12

			if math.Abs(delta) <= 1.0e-5*math.Abs(area12) && error12 >= 0.99*eI {
				roundoffType1++
			}
			if iteration >= 10 && error12 > eI {
				roundoffType2++
			}
		}

		tolerance = math.Max(epsabs, epsrel*math.Abs(area))

		if errSum > tolerance {
			if roundoffType1 >= 6 || roundoffType2 >= 20 {
				errorType = StatusRoundoffLimited
			}

			// bad integrand behaviour at a point of the interval
			if subintervalTooSmall(a1, a2, b2) {
				errorType = StatusSingularityLimited
			}
		}

		w.update(a1, b1, area1, error1, a2, b2, area2, error2)

		iteration++

		if iteration >= limit || errorType != StatusOK || errSum <= tolerance {
			break
		}
	}

	stat.Tolerance = tolerance
	stat.MaximumLevel = uint(w.maximumLevel)

	res.Value = w.sumResults()
	res.AbsError = errSum

	switch {
	case errSum <= tolerance:
		res.Status = StatusOK
	case errorType != StatusOK:
		res.Status = errorType
	case iteration == limit:
		res.Status = StatusBudgetExhausted
	default:
		res.Status = StatusFailed
		err = ErrFailed
	}

	return
}
