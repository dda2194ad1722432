// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"reanalyzer/internal/engine"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cash_flow_convention", validateConvention)
		_ = v.RegisterValidation("trimmed", validateTrimmed)
	}
}

func validateConvention(fl validator.FieldLevel) bool {
	_, err := engine.ParseConvention(fl.Field().String())
	return err == nil
}

func validateTrimmed(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.TrimSpace(s)
}
