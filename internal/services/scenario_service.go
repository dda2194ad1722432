package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"reanalyzer/internal/engine"
	apperrors "reanalyzer/internal/errors"
	"reanalyzer/internal/models"
	"reanalyzer/internal/pagination"
	"reanalyzer/internal/uuid"
)

// scenarioService handles stored scenario business logic.
type scenarioService struct {
	db       *gorm.DB
	analysis AnalysisServicer
}

// NewScenarioService creates a new ScenarioServicer.
func NewScenarioService(db *gorm.DB, analysis AnalysisServicer) ScenarioServicer {
	return &scenarioService{db: db, analysis: analysis}
}

// CreateScenario stores a new scenario. The inputs must pass engine
// validation so that every stored scenario can be evaluated.
func (s *scenarioService) CreateScenario(ctx context.Context, req ScenarioInput) (*models.Scenario, error) {
	name, err := s.checkInput(req)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if err := s.ensureUniqueName(db, name, ""); err != nil {
		return nil, err
	}

	scenario := &models.Scenario{
		Name:        name,
		Description: req.Description,
	}
	scenario.SetInput(req.Input)

	if err := db.Create(scenario).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return scenario, nil
}

// ListScenarios retrieves a paginated list of scenarios.
func (s *scenarioService) ListScenarios(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Scenario], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.WithContext(ctx).Model(&models.Scenario{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var scenarios []models.Scenario
	if err := base.Scopes(pagination.Paginate(page)).Find(&scenarios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(scenarios, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetScenario retrieves a scenario by ID.
func (s *scenarioService) GetScenario(ctx context.Context, id string) (*models.Scenario, error) {
	if !uuid.IsValid(id) {
		return nil, apperrors.ErrScenarioNotFound
	}

	var scenario models.Scenario
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&scenario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScenarioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &scenario, nil
}

// UpdateScenario replaces the name, description and inputs of a scenario.
func (s *scenarioService) UpdateScenario(ctx context.Context, id string, req ScenarioInput) (*models.Scenario, error) {
	name, err := s.checkInput(req)
	if err != nil {
		return nil, err
	}

	scenario, err := s.GetScenario(ctx, id)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if name != scenario.Name {
		if err := s.ensureUniqueName(db, name, scenario.ID); err != nil {
			return nil, err
		}
	}

	scenario.Name = name
	scenario.Description = req.Description
	scenario.SetInput(req.Input)

	if err := db.Save(scenario).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return scenario, nil
}

// DeleteScenario soft-deletes a scenario.
func (s *scenarioService) DeleteScenario(ctx context.Context, id string) error {
	scenario, err := s.GetScenario(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(scenario).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// EvaluateScenario computes the metrics of a stored scenario. An empty
// convention selects the default policy's.
func (s *scenarioService) EvaluateScenario(ctx context.Context, id string, convention engine.Convention) (*models.Scenario, *engine.Result, error) {
	scenario, err := s.GetScenario(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.analysis.Evaluate(ctx, scenario.Input(), convention)
	if err != nil {
		return nil, nil, err
	}
	return scenario, res, nil
}

// checkInput returns the trimmed name once the request is known to be valid.
func (s *scenarioService) checkInput(req ScenarioInput) (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "scenario name is required")
	}
	if err := req.Input.Validate(); err != nil {
		return "", apperrors.FromEngine(err)
	}
	return name, nil
}

func (s *scenarioService) ensureUniqueName(db *gorm.DB, name, exceptID string) error {
	query := db.Model(&models.Scenario{}).Where("name = ?", name)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateScenario
	}
	return nil
}
