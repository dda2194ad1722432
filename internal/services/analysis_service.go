package services

import (
	"context"
	"encoding/json"
	"time"

	"reanalyzer/internal/cache"
	"reanalyzer/internal/engine"
	apperrors "reanalyzer/internal/errors"
	"reanalyzer/internal/logger"
)

// analysisService evaluates inputs through the engine, memoizing results.
type analysisService struct {
	policy engine.Policy
	calcs  map[engine.Convention]*engine.Calculator
	cache  cache.Cache
	ttl    time.Duration
}

// NewAnalysisService creates a new AnalysisServicer applying policy. Callers
// may switch the cash-flow convention per evaluation. A nil cache disables
// memoization.
func NewAnalysisService(policy engine.Policy, c cache.Cache, ttl time.Duration) (AnalysisServicer, error) {
	calcs := make(map[engine.Convention]*engine.Calculator, 2)
	for _, conv := range []engine.Convention{engine.ConventionWorkbook, engine.ConventionLevelAnnuity} {
		p := policy
		p.Convention = conv
		calc, err := engine.NewCalculator(p)
		if err != nil {
			return nil, err
		}
		calcs[conv] = calc
	}
	return &analysisService{policy: policy, calcs: calcs, cache: c, ttl: ttl}, nil
}

// Policy returns the default policy applied to evaluations.
func (s *analysisService) Policy() engine.Policy {
	return s.policy
}

// Evaluate validates in and returns its metrics under convention, or under
// the default policy's convention when it is empty. Cache faults are logged
// and fall through to a fresh computation.
func (s *analysisService) Evaluate(ctx context.Context, in engine.Input, convention engine.Convention) (*engine.Result, error) {
	if err := in.Validate(); err != nil {
		return nil, apperrors.FromEngine(err)
	}

	if convention == "" {
		convention = s.policy.Convention
	}
	calc, ok := s.calcs[convention]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown convention "+string(convention))
	}

	if s.cache == nil {
		return compute(calc, in)
	}

	log := logger.Named("analysis")
	key, err := cache.Key(in, calc.Policy())
	if err != nil {
		log.Warnw("cache key failed", "error", err)
		return compute(calc, in)
	}

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		log.Warnw("cache read failed", "key", key, "error", err)
	} else if ok {
		var cached engine.Result
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		log.Warnw("discarding corrupt cache entry", "key", key)
	}

	res, err := compute(calc, in)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(res)
	if err != nil {
		log.Warnw("cache encode failed", "key", key, "error", err)
		return res, nil
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.Warnw("cache write failed", "key", key, "error", err)
	}
	return res, nil
}

func compute(calc *engine.Calculator, in engine.Input) (*engine.Result, error) {
	res, err := calc.Evaluate(in)
	if err != nil {
		return nil, apperrors.FromEngine(err)
	}
	return res, nil
}
