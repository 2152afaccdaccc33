package harness

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/pplir/internal/hir"
	"github.com/roach88/pplir/internal/irspec"
	"github.com/roach88/pplir/internal/mir"
)

// Options configures a scenario run.
// The zero value discards logs and uses UUIDv7 run IDs.
type Options struct {
	Logger *slog.Logger
	RunIDs RunIDGenerator
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.RunIDs == nil {
		o.RunIDs = UUIDv7Generator{}
	}
	return o
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Compile the scenario's CUE fragment
// 2. Collect structural validation codes (annotations, then statements)
// 3. Render every node and hash every statement
// 4. Check expectations
//
// A fragment that fails to compile is an error, not a failed expectation.
func Run(scenario *Scenario, opts Options) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is required")
	}
	opts = opts.withDefaults()

	runID := opts.RunIDs.Generate()
	logger := opts.Logger.With("run_id", runID, "scenario", scenario.Name)

	frag, err := irspec.LoadFile(scenario.Fragment)
	if err != nil {
		logger.Error("fragment compile failed", "fragment", scenario.Fragment, "error", err)
		return nil, fmt.Errorf("failed to compile fragment %s: %w", scenario.Fragment, err)
	}
	logger.Debug("fragment compiled",
		"fragment", frag.Name,
		"annotations", len(frag.Annotations),
		"statements", len(frag.Statements))

	result := NewResult(runID)
	result.Rendering = Render(frag)
	result.MangledName = hir.MangledName(frag.Annotations, frag.Name)

	for _, verr := range hir.ValidateAnnotations(frag.Annotations) {
		logger.Debug("validation error", "code", verr.Code, "field", verr.Field, "message", verr.Message)
		result.Codes = append(result.Codes, verr.Code)
	}
	for _, verr := range mir.ValidateStatements(frag.Statements) {
		logger.Debug("validation error", "code", verr.Code, "field", verr.Field, "message", verr.Message)
		result.Codes = append(result.Codes, verr.Code)
	}

	for i, stmt := range frag.Statements {
		hash, err := mir.StatementHash(stmt)
		if err != nil {
			logger.Warn("statement not hashable", "index", i, "error", err)
		}
		result.Hashes = append(result.Hashes, hash)

		if local, ok := mir.Consumed(stmt); ok {
			result.Consumed = append(result.Consumed, local.Index())
		}
	}

	checkExpectation(scenario.Expect, result)

	logger.Info("scenario finished",
		"pass", result.Pass,
		"codes", len(result.Codes),
		"failures", len(result.Errors))

	return result, nil
}

// RunFile loads a scenario file and runs it.
func RunFile(path string, opts Options) (*Result, error) {
	scenario, err := LoadScenario(path)
	if err != nil {
		return nil, err
	}
	return Run(scenario, opts)
}

// Render returns the debug rendering of a fragment, one node per line:
// the fragment header, then annotations, then statements.
func Render(frag *irspec.Fragment) []string {
	lines := make([]string, 0, 1+len(frag.Annotations)+len(frag.Statements))
	lines = append(lines, "fragment "+frag.Name)
	for _, a := range frag.Annotations {
		lines = append(lines, renderNode(a))
	}
	for _, stmt := range frag.Statements {
		lines = append(lines, renderNode(stmt))
	}
	return lines
}

func renderNode(n fmt.Stringer) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

// checkExpectation compares the result against the expected outcome.
// Nil fields are skipped.
func checkExpectation(expect *Expectation, result *Result) {
	if expect == nil {
		return
	}

	if expect.Valid != nil {
		valid := len(result.Codes) == 0
		if valid != *expect.Valid {
			result.AddError(fmt.Sprintf("expected valid=%t, got valid=%t (codes: %v)", *expect.Valid, valid, result.Codes))
		}
	}

	if expect.ErrorCodes != nil && !slices.Equal(expect.ErrorCodes, result.Codes) {
		result.AddError(fmt.Sprintf("expected error codes %v, got %v", expect.ErrorCodes, result.Codes))
	}

	if expect.MangledName != nil && *expect.MangledName != result.MangledName {
		result.AddError(fmt.Sprintf("expected mangled name %q, got %q", *expect.MangledName, result.MangledName))
	}

	if expect.Consumed != nil && !slices.Equal(expect.Consumed, result.Consumed) {
		result.AddError(fmt.Sprintf("expected consumed locals %v, got %v", expect.Consumed, result.Consumed))
	}
}
