package services

import (
	"context"

	"reanalyzer/internal/engine"
	"reanalyzer/internal/models"
	"reanalyzer/internal/pagination"
)

// AnalysisServicer defines the contract for evaluating deal inputs.
type AnalysisServicer interface {
	Evaluate(ctx context.Context, in engine.Input, convention engine.Convention) (*engine.Result, error)
	Policy() engine.Policy
}

// ScenarioInput carries the user-editable fields of a scenario.
type ScenarioInput struct {
	Name        string
	Description string
	Input       engine.Input
}

// ScenarioServicer defines the contract for stored scenarios.
type ScenarioServicer interface {
	CreateScenario(ctx context.Context, req ScenarioInput) (*models.Scenario, error)
	ListScenarios(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error)
	GetScenario(ctx context.Context, id string) (*models.Scenario, error)
	UpdateScenario(ctx context.Context, id string, req ScenarioInput) (*models.Scenario, error)
	DeleteScenario(ctx context.Context, id string) error
	EvaluateScenario(ctx context.Context, id string, convention engine.Convention) (*models.Scenario, *engine.Result, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
