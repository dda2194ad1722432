package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reanalyzer/internal/engine"
	"reanalyzer/internal/models"
	"reanalyzer/internal/pagination"
	"reanalyzer/internal/services"
)

// ScenarioHandler handles stored scenario requests.
type ScenarioHandler struct {
	scenarioService services.ScenarioServicer
	auditService    services.AuditServicer
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(scenarioService services.ScenarioServicer, auditService services.AuditServicer) *ScenarioHandler {
	return &ScenarioHandler{scenarioService: scenarioService, auditService: auditService}
}

// ScenarioRequest represents the request payload for creating or replacing a scenario.
type ScenarioRequest struct {
	Name        string        `json:"name" binding:"required,min=1,max=200,trimmed" example:"Marina 2BR"`
	Description string        `json:"description" binding:"max=1000"`
	Inputs      *InputRequest `json:"inputs" binding:"required"`
}

func (r *ScenarioRequest) serviceInput() services.ScenarioInput {
	return services.ScenarioInput{
		Name:        r.Name,
		Description: r.Description,
		Input:       r.Inputs.Input(),
	}
}

// ScenarioResponse represents a scenario in the response.
type ScenarioResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Inputs      engine.Input `json:"inputs"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func newScenarioResponse(s *models.Scenario) ScenarioResponse {
	return ScenarioResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Inputs:      s.Input(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// EvaluateScenarioQuery holds the optional convention override.
type EvaluateScenarioQuery struct {
	Convention string `form:"convention" binding:"omitempty,cash_flow_convention"`
}

// ScenarioEvaluationResponse pairs a scenario with its metrics.
type ScenarioEvaluationResponse struct {
	Scenario ScenarioResponse `json:"scenario"`
	EvaluationResponse
}

// CreateScenario handles storing a new scenario.
// @Summary     Create a scenario
// @Description Store a named set of deal inputs
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body ScenarioRequest true "Scenario details"
// @Success     201 {object} ScenarioResponse "Scenario created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	scenario, err := h.scenarioService.CreateScenario(c.Request.Context(), req.serviceInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditCreateScenario, "scenario", scenario.ID, c.ClientIP(),
		map[string]interface{}{"name": scenario.Name})

	c.JSON(http.StatusCreated, gin.H{"scenario": newScenarioResponse(scenario)})
}

// ListScenarios handles the paginated listing of scenarios.
// @Summary     List scenarios
// @Description List stored scenarios, newest first unless sort is given
// @Tags        scenarios
// @Produce     json
// @Security    ApiKeyAuth
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Param       sort      query string false "Sort key: name, created_at, updated_at; prefix with - for descending"
// @Success     200 {object} pagination.PageResponse[ScenarioResponse] "Scenarios"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /scenarios [get]
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.scenarioService.ListScenarios(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data := make([]ScenarioResponse, 0, len(result.Data))
	for i := range result.Data {
		data = append(data, newScenarioResponse(&result.Data[i]))
	}
	c.JSON(http.StatusOK, pagination.NewPageResponse(data, result.Page, result.PageSize, result.TotalItems))
}

// GetScenario handles fetching one scenario.
// @Summary     Get a scenario
// @Tags        scenarios
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Scenario ID"
// @Success     200 {object} ScenarioResponse "Scenario"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Router      /scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	scenario, err := h.scenarioService.GetScenario(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scenario": newScenarioResponse(scenario)})
}

// UpdateScenario handles replacing a scenario.
// @Summary     Replace a scenario
// @Description Replace the name, description and inputs of a scenario
// @Tags        scenarios
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string          true "Scenario ID"
// @Param       request body ScenarioRequest true "Scenario details"
// @Success     200 {object} ScenarioResponse "Scenario updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(c.Request.Context(), id, req.serviceInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditUpdateScenario, "scenario", scenario.ID, c.ClientIP(),
		map[string]interface{}{"name": scenario.Name})

	c.JSON(http.StatusOK, gin.H{"scenario": newScenarioResponse(scenario)})
}

// DeleteScenario handles soft-deleting a scenario.
// @Summary     Delete a scenario
// @Tags        scenarios
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Scenario ID"
// @Success     200 {object} map[string]string "Scenario deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Router      /scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.scenarioService.DeleteScenario(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditDeleteScenario, "scenario", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Scenario deleted successfully"})
}

// EvaluateScenario handles evaluating a stored scenario.
// @Summary     Evaluate a scenario
// @Description Compute metrics for the stored inputs of a scenario
// @Tags        scenarios
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id         path  string true  "Scenario ID"
// @Param       convention query string false "Cash-flow convention (workbook or level-annuity)"
// @Success     200 {object} ScenarioEvaluationResponse "Metrics"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scenario not found"
// @Router      /scenarios/{id}/evaluate [post]
func (h *ScenarioHandler) EvaluateScenario(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query EvaluateScenarioQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	scenario, res, err := h.scenarioService.EvaluateScenario(c.Request.Context(), id, engine.Convention(query.Convention))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScenarioEvaluationResponse{
		Scenario:           newScenarioResponse(scenario),
		EvaluationResponse: newEvaluationResponse(res),
	})
}
