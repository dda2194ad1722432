package engine

// Income is the property's annual operating statement.
type Income struct {
	AnnualRental         float64
	AnnualServiceCharges float64
	NetOperatingIncome   float64
}

// IncomeOf computes rent, operating cost and NOI. A negative NOI is a valid outcome.
func IncomeOf(in Input) Income {
	rent := in.TotalValue * in.RentalROI / 100
	charges := in.PropertySize * in.ServiceChargesPerSqFt
	return Income{
		AnnualRental:         rent,
		AnnualServiceCharges: charges,
		NetOperatingIncome:   rent - charges,
	}
}
