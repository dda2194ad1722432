package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"reanalyzer/internal/engine"
	"reanalyzer/internal/models"
	"reanalyzer/internal/pagination"
	"reanalyzer/internal/services"
	"reanalyzer/internal/validator"
)

// --- mock services ---

type mockAnalysisService struct {
	evaluateFn func(ctx context.Context, in engine.Input, convention engine.Convention) (*engine.Result, error)
}

func (m *mockAnalysisService) Evaluate(ctx context.Context, in engine.Input, convention engine.Convention) (*engine.Result, error) {
	if m.evaluateFn != nil {
		return m.evaluateFn(ctx, in, convention)
	}
	return &engine.Result{Convention: engine.ConventionWorkbook, Issues: []engine.MetricIssue{}}, nil
}

func (m *mockAnalysisService) Policy() engine.Policy {
	return engine.DefaultPolicy()
}

type mockScenarioService struct {
	createFn   func(ctx context.Context, req services.ScenarioInput) (*models.Scenario, error)
	listFn     func(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error)
	getFn      func(ctx context.Context, id string) (*models.Scenario, error)
	updateFn   func(ctx context.Context, id string, req services.ScenarioInput) (*models.Scenario, error)
	deleteFn   func(ctx context.Context, id string) error
	evaluateFn func(ctx context.Context, id string, convention engine.Convention) (*models.Scenario, *engine.Result, error)
}

func (m *mockScenarioService) CreateScenario(ctx context.Context, req services.ScenarioInput) (*models.Scenario, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &models.Scenario{}, nil
}

func (m *mockScenarioService) ListScenarios(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	resp := pagination.NewPageResponse([]models.Scenario{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockScenarioService) GetScenario(ctx context.Context, id string) (*models.Scenario, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &models.Scenario{}, nil
}

func (m *mockScenarioService) UpdateScenario(ctx context.Context, id string, req services.ScenarioInput) (*models.Scenario, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &models.Scenario{}, nil
}

func (m *mockScenarioService) DeleteScenario(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockScenarioService) EvaluateScenario(ctx context.Context, id string, convention engine.Convention) (*models.Scenario, *engine.Result, error) {
	if m.evaluateFn != nil {
		return m.evaluateFn(ctx, id, convention)
	}
	return &models.Scenario{}, &engine.Result{}, nil
}

type auditEntry struct {
	action, resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(action, _, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{action: action, resourceID: resourceID})
}

// verify interface compliance
var (
	_ services.AnalysisServicer = (*mockAnalysisService)(nil)
	_ services.ScenarioServicer = (*mockScenarioService)(nil)
	_ services.AuditServicer    = (*mockAuditService)(nil)
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
