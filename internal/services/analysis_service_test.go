package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"reanalyzer/internal/cache"
	"reanalyzer/internal/engine"
	"reanalyzer/internal/testutil"
)

// faultyCache fails every operation and counts calls.
type faultyCache struct {
	gets, sets int
}

func (c *faultyCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	c.gets++
	return nil, false, errors.New("connection refused")
}

func (c *faultyCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	c.sets++
	return errors.New("connection refused")
}

var _ cache.Cache = (*faultyCache)(nil)

func newAnalysis(t *testing.T, c cache.Cache) AnalysisServicer {
	t.Helper()
	svc, err := NewAnalysisService(engine.DefaultPolicy(), c, time.Minute)
	testutil.AssertNoError(t, err)
	return svc
}

func TestAnalysisService_Evaluate(t *testing.T) {
	t.Run("reference deal", func(t *testing.T) {
		svc := newAnalysis(t, nil)

		res, err := svc.Evaluate(context.Background(), testutil.ReferenceInput(), "")
		testutil.AssertNoError(t, err)

		if !res.Complete() {
			t.Fatalf("expected complete result, got issues %v", res.Issues)
		}
		testutil.AssertRelClose(t, "npv", res.Metrics.NPV, 254985.3912, 1e-4)
		testutil.AssertRelClose(t, "irr", *res.Metrics.IRR, 0.02596572182, 1e-4)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := newAnalysis(t, cache.NewMemory(cache.MemoryOptions{}))

		in := testutil.ReferenceInput()
		in.TotalValue = 0
		_, err := svc.Evaluate(context.Background(), in, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("caches results", func(t *testing.T) {
		mem := cache.NewMemory(cache.MemoryOptions{})
		svc := newAnalysis(t, mem)
		ctx := context.Background()

		first, err := svc.Evaluate(ctx, testutil.ReferenceInput(), "")
		testutil.AssertNoError(t, err)
		if mem.Len() != 1 {
			t.Fatalf("expected 1 cached entry, got %d", mem.Len())
		}

		second, err := svc.Evaluate(ctx, testutil.ReferenceInput(), "")
		testutil.AssertNoError(t, err)
		if second.Metrics.NPV != first.Metrics.NPV {
			t.Errorf("expected cached npv %v, got %v", first.Metrics.NPV, second.Metrics.NPV)
		}
		if *second.Metrics.IRR != *first.Metrics.IRR {
			t.Errorf("expected cached irr %v, got %v", *first.Metrics.IRR, *second.Metrics.IRR)
		}
	})

	t.Run("distinct inputs use distinct entries", func(t *testing.T) {
		mem := cache.NewMemory(cache.MemoryOptions{})
		svc := newAnalysis(t, mem)
		ctx := context.Background()

		_, err := svc.Evaluate(ctx, testutil.ReferenceInput(), "")
		testutil.AssertNoError(t, err)

		in := testutil.ReferenceInput()
		in.RentalROI = 7
		_, err = svc.Evaluate(ctx, in, "")
		testutil.AssertNoError(t, err)

		if mem.Len() != 2 {
			t.Errorf("expected 2 cached entries, got %d", mem.Len())
		}
	})

	t.Run("cache faults do not fail evaluation", func(t *testing.T) {
		fc := &faultyCache{}
		svc := newAnalysis(t, fc)

		res, err := svc.Evaluate(context.Background(), testutil.ReferenceInput(), "")
		testutil.AssertNoError(t, err)
		if res == nil {
			t.Fatal("expected result")
		}
		if fc.gets != 1 || fc.sets != 1 {
			t.Errorf("expected one get and one set, got %d and %d", fc.gets, fc.sets)
		}
	})

	t.Run("cached issues survive round trip", func(t *testing.T) {
		mem := cache.NewMemory(cache.MemoryOptions{})
		svc := newAnalysis(t, mem)
		ctx := context.Background()

		in := testutil.ReferenceInput()
		in.DownPaymentPercent = 100
		_, err := svc.Evaluate(ctx, in, "")
		testutil.AssertNoError(t, err)

		res, err := svc.Evaluate(ctx, in, "")
		testutil.AssertNoError(t, err)
		if res.Metrics.DSCR != nil {
			t.Errorf("expected undefined dscr, got %v", *res.Metrics.DSCR)
		}
		found := false
		for _, issue := range res.Issues {
			if issue.Metric == engine.MetricDSCR && issue.Code == engine.CodeDivisionByZero {
				found = true
			}
		}
		if !found {
			t.Errorf("expected DIVISION_BY_ZERO issue for dscr, got %v", res.Issues)
		}
	})
}

func TestAnalysisService_Policy(t *testing.T) {
	svc := newAnalysis(t, nil)
	if svc.Policy().Convention != engine.ConventionWorkbook {
		t.Errorf("expected workbook convention, got %s", svc.Policy().Convention)
	}
}

func TestAnalysisService_Convention(t *testing.T) {
	ctx := context.Background()

	t.Run("override", func(t *testing.T) {
		mem := cache.NewMemory(cache.MemoryOptions{})
		svc := newAnalysis(t, mem)

		workbook, err := svc.Evaluate(ctx, testutil.ReferenceInput(), "")
		testutil.AssertNoError(t, err)
		annuity, err := svc.Evaluate(ctx, testutil.ReferenceInput(), engine.ConventionLevelAnnuity)
		testutil.AssertNoError(t, err)

		if workbook.Metrics.DCF == annuity.Metrics.DCF {
			t.Error("expected conventions to produce different dcf")
		}
		if workbook.Metrics.MonthlyEMI != annuity.Metrics.MonthlyEMI {
			t.Error("expected conventions to share loan figures")
		}
		if mem.Len() != 2 {
			t.Errorf("expected one cache entry per convention, got %d", mem.Len())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		svc := newAnalysis(t, nil)

		_, err := svc.Evaluate(ctx, testutil.ReferenceInput(), engine.Convention("monthly"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_policy", func(t *testing.T) {
		policy := engine.DefaultPolicy()
		policy.AgentFeeRate = -1
		if _, err := NewAnalysisService(policy, nil, 0); err == nil {
			t.Error("expected invalid policy to be rejected")
		}
	})
}
