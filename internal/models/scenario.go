package models

import "reanalyzer/internal/engine"

// Scenario is a named set of deal inputs kept for later evaluation.
// Evaluation results are computed on demand and never stored.
type Scenario struct {
	Base
	Name                   string  `gorm:"not null;index" json:"name"`
	Description            string  `json:"description"`
	PropertySize           float64 `gorm:"not null" json:"property_size"`
	TotalValue             float64 `gorm:"not null" json:"total_value"`
	DownPaymentPercent     float64 `gorm:"not null" json:"down_payment_percent"`
	RegistrationFeePercent float64 `gorm:"not null" json:"registration_fee_percent"`
	Tenure                 int     `gorm:"not null" json:"tenure"`
	DiscountRate           float64 `gorm:"not null" json:"discount_rate"`
	RentalROI              float64 `gorm:"column:rental_roi;not null" json:"rental_roi"`
	ServiceChargesPerSqFt  float64 `gorm:"column:service_charges_per_sq_ft;not null" json:"service_charges_per_sq_ft"`
	ExitValue              float64 `gorm:"not null" json:"exit_value"`
}

// Input returns the engine input described by the scenario.
func (s *Scenario) Input() engine.Input {
	return engine.Input{
		PropertySize:           s.PropertySize,
		TotalValue:             s.TotalValue,
		DownPaymentPercent:     s.DownPaymentPercent,
		RegistrationFeePercent: s.RegistrationFeePercent,
		Tenure:                 float64(s.Tenure),
		DiscountRate:           s.DiscountRate,
		RentalROI:              s.RentalROI,
		ServiceChargesPerSqFt:  s.ServiceChargesPerSqFt,
		ExitValue:              s.ExitValue,
	}
}

// SetInput copies validated engine input onto the scenario.
func (s *Scenario) SetInput(in engine.Input) {
	s.PropertySize = in.PropertySize
	s.TotalValue = in.TotalValue
	s.DownPaymentPercent = in.DownPaymentPercent
	s.RegistrationFeePercent = in.RegistrationFeePercent
	s.Tenure = int(in.Tenure)
	s.DiscountRate = in.DiscountRate
	s.RentalROI = in.RentalROI
	s.ServiceChargesPerSqFt = in.ServiceChargesPerSqFt
	s.ExitValue = in.ExitValue
}
