package quad

import "math"

const (
	// dblEpsilon is the distance from 1.0 to the next larger float64
	dblEpsilon = 2.2204460492503131e-16
	// dblMin is the smallest positive normal float64
	dblMin = 2.2250738585072014e-308
)

// -- rescales a raw error estimate against magnitude and deviation signals
//
// The raw Kronrod-minus-Gauss difference underestimates the error for
// near-polynomial integrands (the difference vanishes even when truncation
// does not). resultAsc supplies an independent signal; the estimate is
// blown up non-linearly towards it and floored at the roundoff level of
// the computed integral.
func RescaleError(err, resultAbs, resultAsc float64) float64 {
	err = math.Abs(err)

	if resultAsc != 0 && err != 0 {
		scale := math.Pow(200*err/resultAsc, 1.5)

		if scale < 1 {
			err = resultAsc * scale
		} else {
			err = resultAsc
		}
	}

	if resultAbs > dblMin/(50*dblEpsilon) {
		minErr := 50 * dblEpsilon * resultAbs

		if minErr > err {
			err = minErr
		}
	}

	return err
}

// subintervalTooSmall reports whether a prospective bisection has collapsed
// into representable-number noise, signalling an unresolvable singularity.
// a1 and b2 are the outer endpoints, mid the bisection point between them.
func subintervalTooSmall(a1, mid, b2 float64) bool {
	tmp := (1 + 100*dblEpsilon) * (math.Abs(mid) + 1000*dblMin)

	return math.Abs(a1) <= tmp && math.Abs(b2) <= tmp
}
