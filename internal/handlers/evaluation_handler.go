package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reanalyzer/internal/engine"
	"reanalyzer/internal/services"
)

// EvaluationHandler evaluates deal inputs on demand.
type EvaluationHandler struct {
	analysisService services.AnalysisServicer
}

// NewEvaluationHandler creates a new EvaluationHandler.
func NewEvaluationHandler(analysisService services.AnalysisServicer) *EvaluationHandler {
	return &EvaluationHandler{analysisService: analysisService}
}

// InputRequest carries the nine deal inputs. Every field is required; range
// checks are left to the engine so that errors name the offending field.
type InputRequest struct {
	PropertySize           *float64 `json:"propertySize" binding:"required" example:"1189"`
	TotalValue             *float64 `json:"totalValue" binding:"required" example:"1560000"`
	DownPaymentPercent     *float64 `json:"downPaymentPercent" binding:"required" example:"20"`
	RegistrationFeePercent *float64 `json:"registrationFeePercent" binding:"required" example:"4"`
	Tenure                 *float64 `json:"tenure" binding:"required" example:"25"`
	DiscountRate           *float64 `json:"discountRate" binding:"required" example:"4"`
	RentalROI              *float64 `json:"rentalROI" binding:"required" example:"6"`
	ServiceChargesPerSqFt  *float64 `json:"serviceChargesPerSqFt" binding:"required" example:"10"`
	ExitValue              *float64 `json:"exitValue" binding:"required" example:"1664600"`
}

// Input converts the request into engine input. Call only after binding.
func (r *InputRequest) Input() engine.Input {
	return engine.Input{
		PropertySize:           *r.PropertySize,
		TotalValue:             *r.TotalValue,
		DownPaymentPercent:     *r.DownPaymentPercent,
		RegistrationFeePercent: *r.RegistrationFeePercent,
		Tenure:                 *r.Tenure,
		DiscountRate:           *r.DiscountRate,
		RentalROI:              *r.RentalROI,
		ServiceChargesPerSqFt:  *r.ServiceChargesPerSqFt,
		ExitValue:              *r.ExitValue,
	}
}

// EvaluateRequest represents the request payload for an ad hoc evaluation.
type EvaluateRequest struct {
	InputRequest
	Convention string `json:"convention" binding:"omitempty,cash_flow_convention" example:"workbook"`
}

// EvaluationResponse reports computed metrics. Undefined metrics are null and
// described in issues.
type EvaluationResponse struct {
	Convention engine.Convention    `json:"convention"`
	Metrics    engine.Metrics       `json:"metrics"`
	Issues     []engine.MetricIssue `json:"issues"`
}

func newEvaluationResponse(res *engine.Result) EvaluationResponse {
	issues := res.Issues
	if issues == nil {
		issues = []engine.MetricIssue{}
	}
	return EvaluationResponse{Convention: res.Convention, Metrics: res.Metrics, Issues: issues}
}

// Evaluate handles an ad hoc evaluation.
// @Summary     Evaluate a deal
// @Description Compute capital, income, loan, DCF and return metrics for a set of inputs
// @Tags        evaluations
// @Accept      json
// @Produce     json
// @Param       request body EvaluateRequest true "Deal inputs"
// @Success     200 {object} EvaluationResponse "Metrics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     429 {object} ErrorResponse "Rate limited"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /evaluations [post]
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	res, err := h.analysisService.Evaluate(c.Request.Context(), req.Input(), engine.Convention(req.Convention))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEvaluationResponse(res))
}

// Policy returns the default evaluation policy.
// @Summary     Get evaluation policy
// @Description Return the agent fee rate, convention, projection horizon and IRR solver settings
// @Tags        evaluations
// @Produce     json
// @Success     200 {object} engine.Policy "Policy"
// @Router      /policy [get]
func (h *EvaluationHandler) Policy(c *gin.Context) {
	c.JSON(http.StatusOK, h.analysisService.Policy())
}
