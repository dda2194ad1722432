package engine

// Metric names reported in issues.
const (
	MetricDSCR = "dscr"
	MetricIRR  = "irr"
	MetricROIC = "roic"
)

// DSCR is NOI over annual debt service. An all-cash purchase has no debt
// service and therefore no coverage ratio.
func DSCR(noi, annualDebtService float64) (float64, error) {
	if annualDebtService == 0 {
		return 0, &DivisionByZeroError{Metric: MetricDSCR}
	}
	return noi / annualDebtService, nil
}

// ROIC is the net present gain of the holding per unit of invested capital.
func ROIC(npv, investedCapital float64) (float64, error) {
	if investedCapital == 0 {
		return 0, &DivisionByZeroError{Metric: MetricROIC}
	}
	return npv / investedCapital, nil
}
