package harness

import "fmt"

// AssertionError describes an expectation the engine did not meet.
type AssertionError struct {
	Subject  string
	Pattern  string
	Expected Outcome
	Actual   Outcome
	Source   bool
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	what := fmt.Sprintf("%q", e.Subject)
	if e.Source {
		what = fmt.Sprintf("pattern source %q", e.Subject)
	}

	verb := "to match"
	if e.Expected == OutcomeNoMatch {
		verb = "not to match"
	}

	return fmt.Sprintf("expected %s %s /%s/, got %s", what, verb, e.Pattern, e.Actual)
}

// outcomeOf converts an engine answer into an Outcome.
func outcomeOf(matched bool) Outcome {
	if matched {
		return OutcomeMatch
	}
	return OutcomeNoMatch
}

// assertOutcome compares the actual outcome with the assertion's expectation.
func assertOutcome(a Assertion, actual Outcome) error {
	if actual == a.Expect {
		return nil
	}
	return &AssertionError{
		Subject:  a.Subject,
		Pattern:  a.Pattern,
		Expected: a.Expect,
		Actual:   actual,
		Source:   a.Source,
	}
}
