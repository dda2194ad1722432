package testutil_test

import (
	"testing"

	"reanalyzer/internal/errors"
	"reanalyzer/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("scenarios").Count(&count).Error; err != nil {
		t.Errorf("table scenarios should exist after migration: %v", err)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	a := testutil.CreateTestScenario(t, db)
	b := testutil.CreateTestScenario(t, db)
	if a.ID == "" || b.ID == "" {
		t.Fatal("scenarios should have generated IDs")
	}
	if a.Name == b.Name {
		t.Errorf("expected unique names, both are %q", a.Name)
	}
	if a.Input() != testutil.ReferenceInput() {
		t.Errorf("expected reference input, got %+v", a.Input())
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrScenarioNotFound, "custom message")
	testutil.AssertAppError(t, err, "SCENARIO_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
