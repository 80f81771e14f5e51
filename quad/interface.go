package quad

// Function is the integrand: a scalar real function of one real argument.
// It is assumed total over every point the engine queries.
type Function func(x float64) float64

// RuleResult is the output of evaluating one fixed-order quadrature rule
// over one interval.
type RuleResult struct {
	// Value is the higher-order (Kronrod) estimate of the integral
	Value float64

	// AbsEstimate is the rule applied to |f|, used for
	// relative-error normalization
	AbsEstimate float64

	// AscEstimate measures the deviation of f from its mean over the
	// interval, an independent roundoff-risk signal
	AscEstimate float64

	// ErrorEstimate is the rescaled local error estimate
	ErrorEstimate float64
}

// Rule is a pluggable fixed-order quadrature evaluator.
// The adaptive driver is agnostic to which order is injected.
type Rule interface {
	Info() RuleInfo
	Evaluate(f Function, a, b float64) RuleResult
}

type RuleInfo struct {
	Name string

	// GaussPoints is the order of the embedded Gauss rule,
	// KronrodPoints the order of the enclosing Kronrod rule (2m+1)
	GaussPoints, KronrodPoints uint
}

func (i *RuleInfo) Info() RuleInfo {
	return *i
}

type Config struct {
	// AbsoluteTolerance is the requested absolute accuracy epsabs.
	AbsoluteTolerance float64

	// RelativeTolerance is the requested relative accuracy epsrel.
	// At least one of the two tolerances must be achievable;
	// otherwise integration is rejected before any evaluation.
	RelativeTolerance float64

	// Limit, if > 0, bounds the number of subintervals the domain may be
	// split into. The workspace is sized to exactly this many entries.
	// If 0, DefaultLimit is used.
	Limit uint
}

type Statistics struct {
	// Bisections is the number of worst-interval bisections performed
	Bisections uint
	// Evaluations is the number of times the integrand was called
	Evaluations uint
	// MaximumLevel is the deepest bisection level reached
	MaximumLevel uint

	// Tolerance is the final accuracy target max(epsabs, epsrel*|area|)
	Tolerance float64
}

// Result carries the integral estimate, its absolute error estimate and
// the termination status. Any status other than StatusBadTolerance still
// carries a usable best-effort estimate.
type Result struct {
	Value    float64
	AbsError float64
	Status   Status
}
