package store

import (
	"path/filepath"
	"testing"
)

// createTestStore opens a fresh ledger in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun builds a run with two checks, the second failing.
func createTestRun(id, suite string) Run {
	return Run{
		ID:          id,
		Engine:      "go",
		Suite:       suite,
		SuiteDigest: "digest-" + suite,
		Passed:      0,
		Total:       1,
		Checks: []Check{
			{Seq: 1, Koan: "optional", Subject: "son", Pattern: `^so?o?n$`, Expect: "match", Actual: "match", Passed: true},
			{Seq: 2, Koan: "optional", Subject: "sooon", Pattern: `^so*n$`, Expect: "no_match", Actual: "match", Passed: false,
				Error: `expected "sooon" not to match /^so*n$/, got match`},
		},
	}
}
