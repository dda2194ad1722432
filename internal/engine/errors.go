package engine

import "fmt"

// InvalidInputError reports the first Input field that violates its constraint.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// DivisionByZeroError reports a ratio metric whose denominator is zero.
type DivisionByZeroError struct {
	Metric string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Metric)
}

// IRR solver failure reasons.
const (
	ReasonNoBracket     = "no-bracket"
	ReasonMaxIterations = "max-iterations"
)

// IRRConvergenceError is returned when the root finder cannot bracket or
// converge to a rate inside its search interval.
type IRRConvergenceError struct {
	Reason     string
	Lower      float64
	Upper      float64
	Iterations int
}

func (e *IRRConvergenceError) Error() string {
	return fmt.Sprintf("irr: %s in [%g, %g] after %d iterations", e.Reason, e.Lower, e.Upper, e.Iterations)
}
