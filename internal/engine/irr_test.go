package engine

import (
	"errors"
	"math"
	"testing"
)

func TestSeries_NPV(t *testing.T) {
	s := Series{-100, 60, 60}
	want := -100 + 60/1.1 + 60/(1.1*1.1)
	if got := s.NPV(0.1); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
	if got := s.NPV(0); got != 20 {
		t.Errorf("expected undiscounted sum 20, got %g", got)
	}
}

func TestSolveIRR(t *testing.T) {
	cfg := DefaultSolverConfig()

	tests := []struct {
		name   string
		series Series
		want   float64
	}{
		{"single period", Series{-100, 110}, 0.10},
		{"two periods", Series{-100, 0, 121}, 0.10},
		{"negative rate", Series{-100, 50}, -0.50},
		{"break even", Series{-100, 40, 60}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolveIRR(tt.series, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("expected %g, got %g", tt.want, got)
			}
			if residual := tt.series.NPV(got); math.Abs(residual) > cfg.Tolerance*100 {
				t.Errorf("residual NPV %g exceeds tolerance", residual)
			}
		})
	}
}

func TestSolveIRR_WidensOnce(t *testing.T) {
	// Root at 19.0 lies outside [-0.99, 10] but inside the widened interval.
	s := Series{-100, 2000}
	got, err := SolveIRR(s, DefaultSolverConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-19) > 1e-6 {
		t.Errorf("expected 19, got %g", got)
	}
}

func TestSolveIRR_Failures(t *testing.T) {
	t.Run("no sign change", func(t *testing.T) {
		_, err := SolveIRR(Series{100, 50, 25}, DefaultSolverConfig())
		var convErr *IRRConvergenceError
		if !errors.As(err, &convErr) {
			t.Fatalf("expected *IRRConvergenceError, got %T: %v", err, err)
		}
		if convErr.Reason != ReasonNoBracket {
			t.Errorf("expected reason %q, got %q", ReasonNoBracket, convErr.Reason)
		}
		if convErr.Lower != DefaultSolverConfig().WidenedLower {
			t.Errorf("expected failure to be reported on the widened interval, got lower %g", convErr.Lower)
		}
	})

	t.Run("iteration cap", func(t *testing.T) {
		cfg := DefaultSolverConfig()
		cfg.MaxIterations = 1
		_, err := SolveIRR(Series{-100, 110}, cfg)
		var convErr *IRRConvergenceError
		if !errors.As(err, &convErr) {
			t.Fatalf("expected *IRRConvergenceError, got %T: %v", err, err)
		}
		if convErr.Reason != ReasonMaxIterations || convErr.Iterations != 1 {
			t.Errorf("expected max-iterations after 1 iteration, got %+v", convErr)
		}
	})
}
