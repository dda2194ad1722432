package engine

// CapitalStructure holds the acquisition costs of a purchase.
type CapitalStructure struct {
	PricePerSqFt    float64
	DownPayment     float64
	LandDeptFee     float64
	AgentFee        float64
	InvestedCapital float64
	Financing       float64
}

// CapitalStructureOf splits the purchase price into the owner's committed
// capital and the financed remainder.
func CapitalStructureOf(in Input, agentFeeRate float64) CapitalStructure {
	down := in.TotalValue * in.DownPaymentPercent / 100
	landFee := in.TotalValue * in.RegistrationFeePercent / 100
	agentFee := in.TotalValue * agentFeeRate
	return CapitalStructure{
		PricePerSqFt:    in.TotalValue / in.PropertySize,
		DownPayment:     down,
		LandDeptFee:     landFee,
		AgentFee:        agentFee,
		InvestedCapital: down + landFee + agentFee,
		Financing:       in.TotalValue - down,
	}
}
