package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"reanalyzer/internal/engine"
)

// LoadPolicy returns the engine policy. Without a path it returns the
// default policy; otherwise fields present in the YAML document override the
// defaults.
//
// Example:
//
//	agent_fee_rate: 0.025
//	convention: level-annuity
//	solver:
//	  max_iterations: 500
func LoadPolicy(path string) (engine.Policy, error) {
	policy := engine.DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Policy{}, fmt.Errorf("failed to read policy file: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy decodes a YAML policy document on top of the default policy.
func ParsePolicy(data []byte) (engine.Policy, error) {
	policy := engine.DefaultPolicy()
	if err := yaml.UnmarshalStrict(data, &policy); err != nil {
		return engine.Policy{}, fmt.Errorf("failed to parse policy: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return engine.Policy{}, fmt.Errorf("invalid policy: %w", err)
	}
	return policy, nil
}
