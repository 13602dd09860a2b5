package harness

// CheckResult is the outcome of evaluating one assertion.
type CheckResult struct {
	// Koan is the ID of the owning koan; empty for bare RunSuite calls.
	Koan string `json:"koan,omitempty"`

	// Index is the assertion's position within its koan (or input slice).
	Index int `json:"index"`

	// Seq orders results within a run, starting at 1.
	Seq int64 `json:"seq"`

	Assertion Assertion `json:"assertion"`

	// Actual is what the engine reported, or OutcomeError when the
	// pattern could not be compiled.
	Actual Outcome `json:"actual"`

	// Passed is true when Actual equals the assertion's expectation.
	Passed bool `json:"passed"`

	// Err explains a failed check: an *AssertionError or a
	// *match.PatternSyntaxError. Nil when Passed.
	Err error `json:"-"`
}

// KoanResult groups the checks of one koan. A koan passes only when every
// one of its checks passes.
type KoanResult struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Passed bool          `json:"passed"`
	Checks []CheckResult `json:"checks"`
}

// Failures returns the failed checks in order.
func (r *KoanResult) Failures() []CheckResult {
	var failed []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// SuiteResult is the outcome of running a suite.
type SuiteResult struct {
	Suite       string       `json:"suite"`
	Description string       `json:"description,omitempty"`
	Engine      string       `json:"engine"`
	Digest      string       `json:"digest"`
	Koans       []KoanResult `json:"koans"`
	Passed      int          `json:"passed"`
	Total       int          `json:"total"`
}

// Pass reports whether every koan passed.
func (r *SuiteResult) Pass() bool {
	return r.Passed == r.Total
}

// Title is the heading used in reports.
func (r *SuiteResult) Title() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Suite
}

// Totals sums passed and total koans across results.
func Totals(results ...*SuiteResult) (passed, total int) {
	for _, r := range results {
		passed += r.Passed
		total += r.Total
	}
	return passed, total
}
