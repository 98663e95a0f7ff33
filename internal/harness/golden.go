package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a suite and compares the report against a golden
// file. The golden file is stored in testdata/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files serve as the source of truth for expected law behavior.
// The run token is fixed so the serialized report stays deterministic.
func RunWithGolden(t *testing.T, suite *Suite) error {
	t.Helper()

	runner := NewRunner(WithRunToken("golden"))
	report, err := runner.Run(suite)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t)
	g.Assert(t, report.Suite, data)
	return nil
}
