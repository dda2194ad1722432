package engine

import (
	"fmt"
	"math"
)

// Convention selects the cash-flow horizon and the layout of the IRR series.
type Convention string

const (
	// ConventionWorkbook values operating cash flow over a fixed projection
	// grid and places the discounted exit value one period after it.
	ConventionWorkbook Convention = "workbook"
	// ConventionLevelAnnuity values operating cash flow over the full tenure
	// and realises the nominal exit value alongside the last year's cash flow.
	ConventionLevelAnnuity Convention = "level-annuity"
)

// DefaultAgentFeeRate is the brokerage commission charged on the purchase price.
const DefaultAgentFeeRate = 0.02

// DefaultProjectionYears is the length of the workbook projection grid.
const DefaultProjectionYears = 20

// SolverConfig bounds the IRR root finder.
type SolverConfig struct {
	Lower         float64 `json:"lower" yaml:"lower"`
	Upper         float64 `json:"upper" yaml:"upper"`
	WidenedLower  float64 `json:"widened_lower" yaml:"widened_lower"`
	WidenedUpper  float64 `json:"widened_upper" yaml:"widened_upper"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`
}

// Policy carries the constants that are not part of a deal's inputs.
type Policy struct {
	AgentFeeRate    float64      `json:"agent_fee_rate" yaml:"agent_fee_rate"`
	Convention      Convention   `json:"convention" yaml:"convention"`
	ProjectionYears int          `json:"projection_years" yaml:"projection_years"`
	Solver          SolverConfig `json:"solver" yaml:"solver"`
}

// DefaultSolverConfig returns the standard IRR search settings.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Lower:         -0.99,
		Upper:         10.0,
		WidenedLower:  -0.9999,
		WidenedUpper:  1000.0,
		MaxIterations: 200,
		Tolerance:     1e-9,
	}
}

// DefaultPolicy returns the policy calibrated against the reference workbook.
func DefaultPolicy() Policy {
	return Policy{
		AgentFeeRate:    DefaultAgentFeeRate,
		Convention:      ConventionWorkbook,
		ProjectionYears: DefaultProjectionYears,
		Solver:          DefaultSolverConfig(),
	}
}

// ParseConvention maps a name to a Convention. The empty string selects the workbook convention.
func ParseConvention(s string) (Convention, error) {
	switch Convention(s) {
	case "", ConventionWorkbook:
		return ConventionWorkbook, nil
	case ConventionLevelAnnuity:
		return ConventionLevelAnnuity, nil
	}
	return "", fmt.Errorf("unknown cash flow convention %q", s)
}

// Validate reports the first inconsistent policy setting.
func (p Policy) Validate() error {
	if math.IsNaN(p.AgentFeeRate) || p.AgentFeeRate < 0 || p.AgentFeeRate >= 1 {
		return fmt.Errorf("agent fee rate must be in [0, 1), got %g", p.AgentFeeRate)
	}
	if _, err := ParseConvention(string(p.Convention)); err != nil {
		return err
	}
	if p.ProjectionYears < 0 {
		return fmt.Errorf("projection years must not be negative, got %d", p.ProjectionYears)
	}
	s := p.Solver
	if !(s.Lower > -1 && s.Lower < s.Upper) {
		return fmt.Errorf("solver bounds must satisfy -1 < lower < upper, got [%g, %g]", s.Lower, s.Upper)
	}
	if !(s.WidenedLower > -1 && s.WidenedLower <= s.Lower && s.WidenedUpper >= s.Upper) {
		return fmt.Errorf("widened solver bounds [%g, %g] must contain [%g, %g]", s.WidenedLower, s.WidenedUpper, s.Lower, s.Upper)
	}
	if s.MaxIterations < 1 {
		return fmt.Errorf("solver max iterations must be positive, got %d", s.MaxIterations)
	}
	if !(s.Tolerance > 0) {
		return fmt.Errorf("solver tolerance must be positive, got %g", s.Tolerance)
	}
	return nil
}

// horizon returns the number of operating cash-flow years for a tenure.
func (p Policy) horizon(tenure int) int {
	if p.Convention == ConventionLevelAnnuity || p.ProjectionYears == 0 {
		return tenure
	}
	return min(tenure, p.ProjectionYears)
}
