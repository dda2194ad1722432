package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"reanalyzer/internal/engine"
	"reanalyzer/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// ReferenceInput returns the workbook deal: a 1189 sq ft unit bought for
// 1.56M with 20% down over 25 years at 4%.
func ReferenceInput() engine.Input {
	return engine.Input{
		PropertySize:           1189,
		TotalValue:             1560000,
		DownPaymentPercent:     20,
		RegistrationFeePercent: 4,
		Tenure:                 25,
		DiscountRate:           4,
		RentalROI:              6,
		ServiceChargesPerSqFt:  10,
		ExitValue:              1664600,
	}
}

// ReferenceInputJSON is ReferenceInput as a request body.
const ReferenceInputJSON = `{"propertySize":1189,"totalValue":1560000,"downPaymentPercent":20,` +
	`"registrationFeePercent":4,"tenure":25,"discountRate":4,"rentalROI":6,` +
	`"serviceChargesPerSqFt":10,"exitValue":1664600}`

// CreateTestScenario stores a scenario with the reference inputs and a unique name.
func CreateTestScenario(t *testing.T, db *gorm.DB) *models.Scenario {
	t.Helper()
	return CreateTestScenarioWithInput(t, db, ReferenceInput())
}

// CreateTestScenarioWithInput stores a scenario with the given inputs.
func CreateTestScenarioWithInput(t *testing.T, db *gorm.DB, in engine.Input) *models.Scenario {
	t.Helper()

	scenario := &models.Scenario{
		Name:        fmt.Sprintf("Test Scenario %d", nextID()),
		Description: "fixture",
	}
	scenario.SetInput(in)
	if err := db.Create(scenario).Error; err != nil {
		t.Fatalf("failed to create test scenario: %v", err)
	}
	return scenario
}
