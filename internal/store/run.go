package store

import (
	"github.com/roach88/koans/internal/harness"
)

// Run is one recorded suite run.
type Run struct {
	Seq         int64   `json:"seq"`
	ID          string  `json:"id"`
	Engine      string  `json:"engine"`
	Suite       string  `json:"suite"`
	SuiteDigest string  `json:"suite_digest"`
	Passed      int     `json:"passed"`
	Total       int     `json:"total"`
	CreatedAt   string  `json:"created_at,omitempty"`
	Checks      []Check `json:"checks,omitempty"`
}

// Check is one recorded check result.
type Check struct {
	Seq     int64  `json:"seq"`
	Koan    string `json:"koan"`
	Subject string `json:"subject"`
	Pattern string `json:"pattern"`
	Expect  string `json:"expect"`
	Actual  string `json:"actual"`
	Passed  bool   `json:"passed"`
	Source  bool   `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewRun flattens a suite result into a ledger record.
func NewRun(id string, r *harness.SuiteResult) Run {
	run := Run{
		ID:          id,
		Engine:      r.Engine,
		Suite:       r.Suite,
		SuiteDigest: r.Digest,
		Passed:      r.Passed,
		Total:       r.Total,
	}
	for _, k := range r.Koans {
		for _, c := range k.Checks {
			var errMsg string
			if c.Err != nil {
				errMsg = c.Err.Error()
			}
			run.Checks = append(run.Checks, Check{
				Seq:     c.Seq,
				Koan:    c.Koan,
				Subject: c.Assertion.Subject,
				Pattern: c.Assertion.Pattern,
				Expect:  string(c.Assertion.Expect),
				Actual:  string(c.Actual),
				Passed:  c.Passed,
				Source:  c.Assertion.Source,
				Error:   errMsg,
			})
		}
	}
	return run
}
