package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goalsim/goalsim/internal/domain"
)

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a savings plan from a YAML file, applies defaults and
// validates it. The returned plan is ready to hand to the engine.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML plan document.
func (ip *InputParser) Parse(data []byte) (*domain.PlanParameters, error) {
	var plan domain.PlanParameters
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	plan.ApplyDefaults()
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}
