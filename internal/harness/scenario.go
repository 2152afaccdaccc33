package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines an IR fragment check.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Fragment is the path to the CUE fragment file.
	// Relative paths are resolved against the scenario file location.
	Fragment string `yaml:"fragment"`

	// Expect lists the properties the compiled fragment must have.
	// If nil, the scenario only checks that the fragment compiles.
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation specifies the expected outcome of a scenario.
// Nil fields are not checked.
type Expectation struct {
	// Valid is whether structural validation must pass.
	Valid *bool `yaml:"valid,omitempty"`

	// ErrorCodes are the exact validation codes expected, in report order
	// (annotation errors first, then statement errors).
	ErrorCodes []string `yaml:"error_codes,omitempty"`

	// MangledName is the expected symbol name of the fragment's entity.
	MangledName *string `yaml:"mangled_name,omitempty"`

	// Consumed lists the locals consumed by the fragment's statements, in
	// statement order.
	Consumed []uint32 `yaml:"consumed,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	// Resolve the fragment path relative to the scenario BEFORE validation
	if scenario.Fragment != "" && !filepath.IsAbs(scenario.Fragment) {
		scenario.Fragment = filepath.Join(filepath.Dir(path), scenario.Fragment)
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario, nil
}

// ParseScenario decodes scenario YAML without resolving or checking the
// fragment path.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Fragment == "" {
		return fmt.Errorf("fragment is required")
	}

	if _, err := os.Stat(s.Fragment); os.IsNotExist(err) {
		return fmt.Errorf("fragment file not found: %s", s.Fragment)
	}

	return nil
}
