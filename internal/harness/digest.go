package harness

import (
	"github.com/roach88/koans/internal/canon"
)

// DomainSuite separates suite digests from any other digest.
const DomainSuite = "koans/suite/v1"

// SuiteDigest returns a content digest of the suite's koans. Two runs with
// the same digest evaluated the same patterns and subjects.
func SuiteDigest(s *Suite) (string, error) {
	return canon.Digest(DomainSuite, s.canonicalMap())
}

func (s *Suite) canonicalMap() map[string]any {
	koans := make([]any, len(s.Koans))
	for i, k := range s.Koans {
		checks := make([]any, 0, len(k.Assertions))
		for _, a := range k.Checks() {
			checks = append(checks, a.canonicalMap())
		}
		koans[i] = map[string]any{
			"id":     k.ID,
			"checks": checks,
		}
	}
	return map[string]any{
		"name":  s.Name,
		"koans": koans,
	}
}

func (a Assertion) canonicalMap() map[string]any {
	return map[string]any{
		"subject": a.Subject,
		"pattern": a.Pattern,
		"expect":  string(a.Expect),
		"source":  a.Source,
	}
}
