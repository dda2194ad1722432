package engine

import "math"

// Series is a cash-flow sequence indexed by period, period 0 being the
// initial outlay.
type Series []float64

// NPV discounts the series at rate per period.
func (s Series) NPV(rate float64) float64 {
	var total float64
	factor := 1.0
	for _, cf := range s {
		total += cf / factor
		factor *= 1 + rate
	}
	return total
}

// projectSeries lays out the owner's cash flows for the IRR stage.
func projectSeries(convention Convention, investedCapital, cashFlow float64, horizon int, exitValue, terminalPV float64) Series {
	if convention == ConventionLevelAnnuity {
		s := make(Series, horizon+1)
		s[0] = -investedCapital
		for t := 1; t <= horizon; t++ {
			s[t] = cashFlow
		}
		s[horizon] += exitValue
		return s
	}

	s := make(Series, horizon+2)
	s[0] = -investedCapital
	for t := 1; t <= horizon; t++ {
		s[t] = cashFlow
	}
	s[horizon+1] = terminalPV
	return s
}

// minBracketWidth stops bisection once the interval is at float resolution.
const minBracketWidth = 1e-12

// SolveIRR finds the rate zeroing the series NPV by bisection. When the
// configured interval does not bracket a root it retries once over the
// widened interval.
func SolveIRR(s Series, cfg SolverConfig) (float64, error) {
	rate, err := bisect(s, cfg.Lower, cfg.Upper, cfg)
	if err == nil {
		return rate, nil
	}
	if convErr, ok := err.(*IRRConvergenceError); ok && convErr.Reason == ReasonNoBracket {
		return bisect(s, cfg.WidenedLower, cfg.WidenedUpper, cfg)
	}
	return 0, err
}

func bisect(s Series, lo, hi float64, cfg SolverConfig) (float64, error) {
	tol := cfg.Tolerance
	if len(s) > 0 {
		tol *= math.Max(1, math.Abs(s[0]))
	}

	fLo, fHi := s.NPV(lo), s.NPV(hi)
	switch {
	case math.Abs(fLo) <= tol:
		return lo, nil
	case math.Abs(fHi) <= tol:
		return hi, nil
	case math.IsNaN(fLo) || math.IsNaN(fHi) || math.Signbit(fLo) == math.Signbit(fHi):
		return 0, &IRRConvergenceError{Reason: ReasonNoBracket, Lower: lo, Upper: hi}
	}

	a, b := lo, hi
	iterations := 0
	for iterations < cfg.MaxIterations {
		iterations++
		mid := a + (b-a)/2
		fMid := s.NPV(mid)
		if math.Abs(fMid) <= tol {
			return mid, nil
		}
		if b-a < minBracketWidth {
			break
		}
		if math.Signbit(fMid) == math.Signbit(fLo) {
			a, fLo = mid, fMid
		} else {
			b = mid
		}
	}
	return 0, &IRRConvergenceError{Reason: ReasonMaxIterations, Lower: lo, Upper: hi, Iterations: iterations}
}
