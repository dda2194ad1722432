package engine

import "math"

// ProjectCashFlow returns the level yearly cash retained after debt service.
func ProjectCashFlow(noi, annualDebtService float64) float64 {
	return noi - annualDebtService
}

// TerminalValuePV discounts the exit value over years at an annual percentage rate.
func TerminalValuePV(exitValue, ratePercent float64, years int) float64 {
	return exitValue / math.Pow(1+ratePercent/100, float64(years))
}

// AnnuityPV is the present value of a level cash flow received at the end
// of each of years periods.
func AnnuityPV(cashFlow, ratePercent float64, years int) float64 {
	r := ratePercent / 100
	if r == 0 {
		return cashFlow * float64(years)
	}
	return cashFlow * (1 - math.Pow(1+r, -float64(years))) / r
}

// DCF is the discounted value of the holding.
type DCF struct {
	AnnuityPV float64
	DCF       float64
	NPV       float64
}

// AggregateDCF sums the discounted operating cash flows and the terminal
// value and nets off the invested capital.
func AggregateDCF(cashFlow, ratePercent float64, years int, terminalPV, investedCapital float64) DCF {
	annuity := AnnuityPV(cashFlow, ratePercent, years)
	dcf := annuity + terminalPV
	return DCF{AnnuityPV: annuity, DCF: dcf, NPV: dcf - investedCapital}
}
