package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/koans/internal/canon"
	"github.com/roach88/koans/internal/match"
)

// Snapshot returns the canonical JSON form of a suite result. Error values
// are reduced to their messages.
func Snapshot(r *SuiteResult) ([]byte, error) {
	koans := make([]any, len(r.Koans))
	for i, k := range r.Koans {
		checks := make([]any, len(k.Checks))
		for j, c := range k.Checks {
			entry := c.Assertion.canonicalMap()
			entry["seq"] = c.Seq
			entry["actual"] = string(c.Actual)
			entry["passed"] = c.Passed
			if c.Err != nil {
				entry["error"] = c.Err.Error()
			}
			checks[j] = entry
		}
		koans[i] = map[string]any{
			"id":     k.ID,
			"passed": k.Passed,
			"checks": checks,
		}
	}

	return canon.Marshal(map[string]any{
		"suite":  r.Suite,
		"engine": r.Engine,
		"digest": r.Digest,
		"passed": r.Passed,
		"total":  r.Total,
		"koans":  koans,
	})
}

// RunWithGolden runs suite and compares its snapshot against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
func RunWithGolden(t *testing.T, name string, engine match.Engine, suite *Suite) *SuiteResult {
	t.Helper()

	result, err := Run(engine, suite)
	if err != nil {
		t.Fatalf("run %s: %v", suite.Name, err)
	}
	AssertGolden(t, name, result)
	return result
}

// AssertGolden compares an existing result's snapshot against a golden file.
func AssertGolden(t *testing.T, name string, result *SuiteResult) {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		t.Fatalf("snapshot %s: %v", name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
