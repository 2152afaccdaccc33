package harness

// Result is the outcome of a scenario run.
type Result struct {
	// RunID correlates the run with its log records.
	RunID string `json:"run_id"`

	// Pass indicates every expectation held.
	Pass bool `json:"pass"`

	// Rendering is the debug rendering of the fragment, one node per line.
	Rendering []string `json:"rendering"`

	// Hashes holds the content hash of each statement, in order.
	// Statements that cannot be hashed (nil operands) have an empty entry.
	Hashes []string `json:"hashes"`

	// Codes are the structural validation codes reported, in order.
	Codes []string `json:"codes"`

	// Consumed lists the locals consumed by the statements, in order.
	Consumed []uint32 `json:"consumed"`

	// MangledName is the resolved symbol name of the fragment's entity.
	MangledName string `json:"mangled_name"`

	// Errors contains failed expectations.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(runID string) *Result {
	return &Result{
		RunID:     runID,
		Pass:      true,
		Rendering: []string{},
		Hashes:    []string{},
		Codes:     []string{},
		Consumed:  []uint32{},
		Errors:    []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
