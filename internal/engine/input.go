package engine

import (
	"fmt"
	"math"
)

// Input holds the deal parameters of a single property purchase.
// Percentages are expressed on a 0-100 scale.
type Input struct {
	PropertySize           float64 `json:"propertySize"`
	TotalValue             float64 `json:"totalValue"`
	DownPaymentPercent     float64 `json:"downPaymentPercent"`
	RegistrationFeePercent float64 `json:"registrationFeePercent"`
	Tenure                 float64 `json:"tenure"`
	DiscountRate           float64 `json:"discountRate"`
	RentalROI              float64 `json:"rentalROI"`
	ServiceChargesPerSqFt  float64 `json:"serviceChargesPerSqFt"`
	ExitValue              float64 `json:"exitValue"`
}

// MaxTenureYears is the longest loan tenure accepted.
const MaxTenureYears = 100

type fieldRule struct {
	name  string
	value float64
	check func(float64) string
}

func positive(v float64) string {
	if v <= 0 {
		return "must be greater than 0"
	}
	return ""
}

func nonNegative(v float64) string {
	if v < 0 {
		return "must be greater than or equal to 0"
	}
	return ""
}

func percent(v float64) string {
	if v < 0 || v > 100 {
		return "must be between 0 and 100"
	}
	return ""
}

func wholeYears(v float64) string {
	if v < 1 {
		return "must be at least 1"
	}
	if v > MaxTenureYears {
		return fmt.Sprintf("must be at most %d", MaxTenureYears)
	}
	if v != math.Trunc(v) {
		return "must be a whole number of years"
	}
	return ""
}

// Validate checks every field in declaration order and returns an
// *InvalidInputError for the first violation.
func (in Input) Validate() error {
	rules := []fieldRule{
		{"propertySize", in.PropertySize, positive},
		{"totalValue", in.TotalValue, positive},
		{"downPaymentPercent", in.DownPaymentPercent, percent},
		{"registrationFeePercent", in.RegistrationFeePercent, percent},
		{"tenure", in.Tenure, wholeYears},
		{"discountRate", in.DiscountRate, nonNegative},
		{"rentalROI", in.RentalROI, nonNegative},
		{"serviceChargesPerSqFt", in.ServiceChargesPerSqFt, nonNegative},
		{"exitValue", in.ExitValue, positive},
	}
	for _, r := range rules {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return &InvalidInputError{Field: r.name, Reason: "must be a finite number"}
		}
		if reason := r.check(r.value); reason != "" {
			return &InvalidInputError{Field: r.name, Reason: reason}
		}
	}
	return nil
}

// years returns the validated tenure as an integer count.
func (in Input) years() int {
	return int(in.Tenure)
}
