package testutil

import (
	"fmt"
	"sync"
)

// FixedRunIDGenerator generates the same run ID every time.
//
// This enables deterministic log output and golden comparison: the same
// scenario run with the same FixedRunIDGenerator tags every record
// identically.
//
// Thread-safety: FixedRunIDGenerator is stateless and safe for concurrent use.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a new fixed run ID generator.
//
// If id is empty, Generate() returns "test-run-default".
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run ID.
//
// Implements harness.RunIDGenerator interface.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}

// SequentialRunIDGenerator generates run IDs from a monotonic counter:
// "<prefix>-0001", "<prefix>-0002", ...
//
// Use it when a test runs several scenarios and needs to tell their log
// records apart while staying reproducible.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialRunIDGenerator struct {
	mu     sync.Mutex
	prefix string
	seq    int64
}

// NewSequentialRunIDGenerator creates a generator whose first ID ends in 0001.
//
// If prefix is empty, "test-run" is used.
func NewSequentialRunIDGenerator(prefix string) *SequentialRunIDGenerator {
	if prefix == "" {
		prefix = "test-run"
	}
	return &SequentialRunIDGenerator{prefix: prefix}
}

// Generate increments the counter and returns the next run ID.
func (g *SequentialRunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%04d", g.prefix, g.seq)
}

// Count returns how many IDs have been generated.
func (g *SequentialRunIDGenerator) Count() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Reset restarts the sequence.
//
// Used for test reuse. After Reset(), the next ID ends in 0001 again.
func (g *SequentialRunIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
