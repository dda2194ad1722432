// Package engine computes the investment metrics of a single property
// purchase. Every stage is a pure function of the Input and the Policy.
package engine

import (
	"errors"
	"fmt"
)

// Metrics is the full set of derived figures for one Input. DSCR and IRR are
// nil when they are undefined for the deal.
type Metrics struct {
	PricePerSqFt         float64  `json:"pricePerSqFt"`
	DownPaymentAmt       float64  `json:"downPaymentAmt"`
	LandDeptFee          float64  `json:"landDeptFee"`
	AgentFee             float64  `json:"agentFee"`
	AnnualRental         float64  `json:"annualRental"`
	AnnualServiceCharges float64  `json:"annualServiceCharges"`
	NetOperatingIncome   float64  `json:"netOperatingIncome"`
	InvestedCapital      float64  `json:"investedCapital"`
	FinancingAmount      float64  `json:"financingAmount"`
	MonthlyEMI           float64  `json:"monthlyEMI"`
	LoanAmountAnnualized float64  `json:"loanAmountAnnualized"`
	NetAnnualCashFlow    float64  `json:"netAnnualCashFlow"`
	TerminalValuePV      float64  `json:"terminalValuePV"`
	DCF                  float64  `json:"dcf"`
	NPV                  float64  `json:"npv"`
	DSCR                 *float64 `json:"dscr"`
	IRR                  *float64 `json:"irr"`
	ROIC                 float64  `json:"roic"`
}

// Issue codes.
const (
	CodeDivisionByZero = "DIVISION_BY_ZERO"
	CodeIRRUndefined   = "IRR_UNDEFINED"
)

// MetricIssue describes a metric that could not be computed.
type MetricIssue struct {
	Metric  string `json:"metric"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Result is an evaluation outcome. Metrics named in Issues are left undefined.
type Result struct {
	Convention Convention    `json:"convention"`
	Metrics    Metrics       `json:"metrics"`
	Issues     []MetricIssue `json:"issues"`
}

// Complete reports whether every metric is defined.
func (r *Result) Complete() bool {
	return len(r.Issues) == 0
}

// Calculator evaluates inputs under a fixed policy. The zero value is not
// usable; construct one with NewCalculator.
type Calculator struct {
	policy Policy
}

// NewCalculator returns a Calculator for the given policy.
func NewCalculator(policy Policy) (*Calculator, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}
	return &Calculator{policy: policy}, nil
}

// Policy returns the policy the calculator was built with.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// Evaluate runs the pipeline. It fails only when the input is invalid; ratio
// and IRR failures are reported as issues on an otherwise complete Result.
// Under the workbook convention operating cash flow is valued over at most
// Policy.ProjectionYears years, not the full tenure.
func (c *Calculator) Evaluate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	years := in.years()
	horizon := c.policy.horizon(years)

	capital := CapitalStructureOf(in, c.policy.AgentFeeRate)
	income := IncomeOf(in)
	loan := AmortizeLoan(capital.Financing, in.DiscountRate, years)
	cashFlow := ProjectCashFlow(income.NetOperatingIncome, loan.AnnualDebtService)
	terminalPV := TerminalValuePV(in.ExitValue, in.DiscountRate, years)
	dcf := AggregateDCF(cashFlow, in.DiscountRate, horizon, terminalPV, capital.InvestedCapital)

	res := &Result{
		Convention: c.policy.Convention,
		Metrics: Metrics{
			PricePerSqFt:         capital.PricePerSqFt,
			DownPaymentAmt:       capital.DownPayment,
			LandDeptFee:          capital.LandDeptFee,
			AgentFee:             capital.AgentFee,
			AnnualRental:         income.AnnualRental,
			AnnualServiceCharges: income.AnnualServiceCharges,
			NetOperatingIncome:   income.NetOperatingIncome,
			InvestedCapital:      capital.InvestedCapital,
			FinancingAmount:      capital.Financing,
			MonthlyEMI:           loan.MonthlyEMI,
			LoanAmountAnnualized: loan.AnnualDebtService,
			NetAnnualCashFlow:    cashFlow,
			TerminalValuePV:      terminalPV,
			DCF:                  dcf.DCF,
			NPV:                  dcf.NPV,
		},
		Issues: []MetricIssue{},
	}

	series := projectSeries(c.policy.Convention, capital.InvestedCapital, cashFlow, horizon, in.ExitValue, terminalPV)
	if irr, err := SolveIRR(series, c.policy.Solver); err != nil {
		res.addIssue(MetricIRR, err)
	} else {
		res.Metrics.IRR = &irr
	}

	if dscr, err := DSCR(income.NetOperatingIncome, loan.AnnualDebtService); err != nil {
		res.addIssue(MetricDSCR, err)
	} else {
		res.Metrics.DSCR = &dscr
	}

	if roic, err := ROIC(dcf.NPV, capital.InvestedCapital); err != nil {
		res.addIssue(MetricROIC, err)
	} else {
		res.Metrics.ROIC = roic
	}

	return res, nil
}

func (r *Result) addIssue(metric string, err error) {
	code := CodeDivisionByZero
	var convErr *IRRConvergenceError
	if errors.As(err, &convErr) {
		code = CodeIRRUndefined
	}
	r.Issues = append(r.Issues, MetricIssue{Metric: metric, Code: code, Message: err.Error(), Err: err})
}

var standard = mustDefaultCalculator()

func mustDefaultCalculator() *Calculator {
	c, err := NewCalculator(DefaultPolicy())
	if err != nil {
		panic(err)
	}
	return c
}

// Evaluate runs the pipeline under DefaultPolicy.
func Evaluate(in Input) (*Result, error) {
	return standard.Evaluate(in)
}
