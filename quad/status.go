package quad

import "errors"

// Status classifies how an integration terminated.
type Status int

const (
	// StatusOK - the requested accuracy was reached
	StatusOK = Status(iota)
	// StatusBadTolerance - the tolerances cannot be satisfied by any
	// amount of subdivision; rejected before the first evaluation
	StatusBadTolerance
	// StatusRoundoffLimited - roundoff error prevents the requested
	// accuracy from being reached
	StatusRoundoffLimited
	// StatusSingularityLimited - a non-integrable singularity or
	// similarly bad behaviour was detected in the interval
	StatusSingularityLimited
	// StatusBudgetExhausted - the subdivision limit was reached first
	StatusBudgetExhausted
	// StatusFailed - the integration could not be completed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBadTolerance:
		return "bad tolerance"
	case StatusRoundoffLimited:
		return "roundoff limited"
	case StatusSingularityLimited:
		return "singularity limited"
	case StatusBudgetExhausted:
		return "budget exhausted"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrBadTolerance = errors.New("tolerance cannot be achieved with given epsabs and epsrel")
	ErrFailed       = errors.New("could not integrate function")
)
