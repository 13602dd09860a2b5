// Package harness runs regular-expression koans.
//
// A koan is a named lesson holding a pattern and a list of assertions about
// which subjects the pattern must and must not match. The learner edits the
// pattern until every assertion passes. The harness evaluates each assertion
// through a match.Engine, records a CheckResult per assertion and reports one
// pass/fail line per koan.
//
// # Suite Format
//
// Suites are YAML (or CUE, see below) files:
//
//	name: repeating-characters
//	description: Repeating Characters
//	koans:
//	  - id: optional
//	    name: use ? to match Zero or One of a character
//	    lesson: If a character is optional, follow it with a ?
//	    pattern: '^so?o?n$'
//	    assertions:
//	      - { subject: son, expect: match }
//	      - { subject: sooon, expect: no_match }
//	  - id: exact-count
//	    name: use {n} to match a specific count of repeated characters
//	    pattern: '^614-?5{3}-?1234$'
//	    assertions:
//	      - { subject: xyyyz, pattern: '^xy{3}z$', expect: match }
//	      - { subject: 614-555-1234, expect: match }
//	    source_must_match: ['\{']
//
// An assertion without a pattern uses the koan's pattern. Entries in
// source_must_match are evaluated against the koan pattern's own text; they
// force a particular spelling of the answer rather than any equivalent one.
//
// CUE suites use the same field names and are checked against an embedded
// #Suite schema before decoding.
//
// # Outcomes
//
// A failed expectation is recorded, not raised. A pattern the engine cannot
// parse fails only its own check. Any other engine error stops the run.
//
// # Usage
//
//	suite, err := harness.LoadSuite("suites/repeating_characters.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng, _ := match.Lookup("go")
//	result, err := harness.Run(eng, suite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	harness.WriteReport(os.Stdout, result)
package harness
