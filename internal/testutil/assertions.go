package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "reanalyzer/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertRelClose fails the test if got differs from want by more than rel, relative to want.
func AssertRelClose(t *testing.T, name string, got, want, rel float64) {
	t.Helper()

	diff := math.Abs(got - want)
	if want != 0 {
		diff /= math.Abs(want)
	}
	if diff > rel {
		t.Errorf("%s: expected %.10g, got %.10g", name, want, got)
	}
}
