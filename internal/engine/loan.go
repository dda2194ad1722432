package engine

import "math"

// Loan is the level debt service on the financed part of the price.
type Loan struct {
	MonthlyEMI        float64
	AnnualDebtService float64
}

// AmortizeLoan returns the fixed monthly payment that retires principal over
// years at an annual percentage rate compounded monthly.
func AmortizeLoan(principal, annualRatePercent float64, years int) Loan {
	n := float64(years) * 12
	r := annualRatePercent / 100 / 12

	var emi float64
	if r == 0 {
		emi = principal / n
	} else {
		growth := math.Pow(1+r, n)
		emi = principal * r * growth / (growth - 1)
	}

	return Loan{MonthlyEMI: emi, AnnualDebtService: emi * 12}
}
