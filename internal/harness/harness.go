package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Runner executes law suites.
type Runner struct {
	runToken string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunToken fixes the run token, e.g. for deterministic tests.
func WithRunToken(token string) RunnerOption {
	return func(r *Runner) { r.runToken = token }
}

// NewRunner creates a Runner. Without options each run gets a fresh token.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every law in the suite, in suite order, and returns the
// report. An unknown law is a failed result, not an error: the report
// stays comparable.
func (r *Runner) Run(suite *Suite) (*Report, error) {
	if suite == nil {
		return nil, fmt.Errorf("suite must not be nil")
	}
	if len(suite.Laws) == 0 {
		return nil, fmt.Errorf("suite %q names no laws", suite.Name)
	}

	token := r.runToken
	if token == "" {
		token = NewRunToken()
	}

	report := &Report{
		Suite:    suite.Name,
		RunToken: token,
		Results:  make([]Result, 0, len(suite.Laws)),
	}
	for _, id := range suite.Laws {
		report.Results = append(report.Results, checkLaw(id))
	}
	return report, nil
}

// LoadSuite reads a suite definition from a YAML file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("suite must have a name")
	}
	return &s, nil
}

// DefaultSuite covers every law.
func DefaultSuite() *Suite {
	return &Suite{Name: "all-laws", Laws: AllLaws}
}
