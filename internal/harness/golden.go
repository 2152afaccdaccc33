package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot returns the golden form of a result: its rendering, one node per
// line, followed by each statement hash.
func Snapshot(result *Result) []byte {
	var b strings.Builder
	for _, line := range result.Rendering {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for i, hash := range result.Hashes {
		b.WriteString("# ")
		b.WriteString(result.Rendering[len(result.Rendering)-len(result.Hashes)+i])
		b.WriteString(" => ")
		b.WriteString(hash)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares its snapshot against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario, opts Options) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, opts)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result's snapshot against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(result))
}
