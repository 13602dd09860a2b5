// Package testutil holds deterministic stand-ins for the sources of
// variation in a run: sequence numbers and run identifiers.
package testutil

import "sync"

// DeterministicClock is a monotonic logical clock. The harness stamps each
// check result with Next so results order the same way on every run.
type DeterministicClock struct {
	mu  sync.Mutex
	seq int64
}

// NewDeterministicClock returns a clock whose first Next is 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

// Next increments and returns the sequence number.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}
