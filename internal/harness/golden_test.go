package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pplir/internal/testutil"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{"store_const", "bad_consts", "plain"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario, Options{
				RunIDs: testutil.NewFixedRunIDGenerator(""),
			})
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	first, err := RunFile("testdata/scenarios/store_const.yaml", Options{})
	require.NoError(t, err)
	second, err := RunFile("testdata/scenarios/store_const.yaml", Options{})
	require.NoError(t, err)

	// Run IDs differ but the snapshot does not depend on them.
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, Snapshot(first), Snapshot(second))
}

func TestSnapshot_Format(t *testing.T) {
	result := NewResult("r")
	result.Rendering = []string{"fragment f", "_0 = copy _1"}
	result.Hashes = []string{"abc"}

	assert.Equal(t, "fragment f\n_0 = copy _1\n# _0 = copy _1 => abc\n", string(Snapshot(result)))
}

func TestAssertGolden_ExistingResult(t *testing.T) {
	result, err := RunFile("testdata/scenarios/plain.yaml", Options{})
	require.NoError(t, err)

	AssertGolden(t, "plain", result)
}
