package engine

import "testing"

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		wantErr bool
	}{
		{"default", func(*Policy) {}, false},
		{"level annuity", func(p *Policy) { p.Convention = ConventionLevelAnnuity }, false},
		{"empty convention", func(p *Policy) { p.Convention = "" }, false},
		{"unknown convention", func(p *Policy) { p.Convention = "monthly" }, true},
		{"agent fee of 100%", func(p *Policy) { p.AgentFeeRate = 1 }, true},
		{"negative agent fee", func(p *Policy) { p.AgentFeeRate = -0.01 }, true},
		{"negative projection", func(p *Policy) { p.ProjectionYears = -1 }, true},
		{"lower at -1", func(p *Policy) { p.Solver.Lower = -1 }, true},
		{"inverted bounds", func(p *Policy) { p.Solver.Lower, p.Solver.Upper = 1, 0 }, true},
		{"widened narrower", func(p *Policy) { p.Solver.WidenedUpper = 5 }, true},
		{"zero iterations", func(p *Policy) { p.Solver.MaxIterations = 0 }, true},
		{"zero tolerance", func(p *Policy) { p.Solver.Tolerance = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPolicy_Horizon(t *testing.T) {
	p := DefaultPolicy()
	if h := p.horizon(25); h != 20 {
		t.Errorf("expected workbook horizon 20, got %d", h)
	}
	if h := p.horizon(8); h != 8 {
		t.Errorf("expected horizon capped at tenure 8, got %d", h)
	}
	p.Convention = ConventionLevelAnnuity
	if h := p.horizon(25); h != 25 {
		t.Errorf("expected level-annuity horizon 25, got %d", h)
	}
}

func TestParseConvention(t *testing.T) {
	if c, err := ParseConvention(""); err != nil || c != ConventionWorkbook {
		t.Errorf("expected workbook for empty name, got %q, %v", c, err)
	}
	if c, err := ParseConvention("level-annuity"); err != nil || c != ConventionLevelAnnuity {
		t.Errorf("expected level-annuity, got %q, %v", c, err)
	}
	if _, err := ParseConvention("quarterly"); err == nil {
		t.Error("expected error for unknown convention")
	}
}

func TestNewCalculator_RejectsInvalidPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.AgentFeeRate = 2
	if _, err := NewCalculator(p); err == nil {
		t.Fatal("expected error for invalid policy")
	}
}
