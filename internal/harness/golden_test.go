package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoreLawsGolden(t *testing.T) {
	suite, err := LoadSuite("testdata/suites/core.yaml")
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, suite))
}
