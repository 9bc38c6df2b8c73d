// Package optimizer wraps a derivative-free simplex minimizer (gonum's
// Nelder-Mead; not a trust-region method such as BOBYQA) behind
// the single bounded-minimization contract the soco core needs: given a
// scalar objective over R^n and a box [lower, upper], return a point
// inside the box whose objective value is within numerics.Precision of a
// local minimum.
//
// No reference algorithm ships a numerical optimizer, so this package
// follows the surrounding wrapper idiom (governance sentinels, an
// ordered-precondition-then-solve shape) and backs the contract with the
// real ecosystem library gonum.org/v1/gonum/optimize. gonum's Nelder-Mead
// method has no native box-constraint support, so Minimize adds an
// additive barrier that penalizes points outside the box and evaluates f
// only at the clamped point, so f is never called outside its domain.
package optimizer

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/soco/numerics"
)

// OptimizerError reports a failure of the underlying solver. It wraps
// ErrOptimizerFailed so callers can use errors.Is without depending on
// the concrete backend.
type OptimizerError struct {
	// Reason is the backend's status/failure description.
	Reason string
	// Err is the underlying error, if any (nil when the backend merely
	// reported a non-success status).
	Err error
}

// ErrOptimizerFailed is the sentinel every OptimizerError wraps.
var ErrOptimizerFailed = errors.New("optimizer: solver failed")

func (e *OptimizerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("optimizer: solver failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("optimizer: solver failed: %s", e.Reason)
}

func (e *OptimizerError) Unwrap() error { return ErrOptimizerFailed }

// penaltyCoefficient scales the out-of-box barrier added to the
// objective. It must be large enough that the unconstrained optimum of
// the penalized objective never strictly prefers leaving the box.
const penaltyCoefficient = 1e8

// Minimize finds x* in [lower, upper] minimizing f, using a
// derivative-free Nelder-Mead search under a box-barrier penalty.
//
// Preconditions: len(lower) == len(upper) == the dimension f expects,
// and lower[i] <= upper[i] for every i. f must be defined everywhere in
// the box; Minimize never evaluates f outside it.
func Minimize(f func([]float64) float64, lower, upper []float64) ([]float64, error) {
	n := len(lower)
	if len(upper) != n {
		return nil, &OptimizerError{Reason: "lower/upper dimension mismatch"}
	}
	for i := 0; i < n; i++ {
		if lower[i] > upper[i] {
			return nil, &OptimizerError{Reason: fmt.Sprintf("lower[%d] > upper[%d]", i, i)}
		}
	}

	init := make([]float64, n)
	for i := range init {
		init[i] = (lower[i] + upper[i]) / 2
	}

	penalized := func(x []float64) float64 {
		clamped := make([]float64, n)
		var penalty float64
		for i, xi := range x {
			c, _ := numerics.Project(xi, lower[i], upper[i])
			clamped[i] = c
			d := xi - c
			penalty += d * d
		}
		return f(clamped) + penaltyCoefficient*penalty
	}

	problem := optimize.Problem{Func: penalized}
	result, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, &OptimizerError{Reason: "nelder-mead", Err: err}
	}
	switch result.Status {
	case optimize.Success, optimize.FunctionConvergence, optimize.ParameterConvergence:
		// converged; fall through to extracting the result.
	default:
		return nil, &OptimizerError{Reason: result.Status.String()}
	}

	out := make([]float64, n)
	for i, xi := range result.X {
		out[i], _ = numerics.Project(xi, lower[i], upper[i])
	}
	return out, nil
}
