package match

import (
	"errors"
	"fmt"
)

// PatternSyntaxError is returned when an engine rejects a pattern.
type PatternSyntaxError struct {
	Engine  string
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *PatternSyntaxError) Error() string {
	return fmt.Sprintf("%s: invalid pattern %q: %v", e.Engine, e.Pattern, e.Err)
}

func (e *PatternSyntaxError) Unwrap() error {
	return e.Err
}

// IsPatternSyntax reports whether err is, or wraps, a *PatternSyntaxError.
func IsPatternSyntax(err error) bool {
	var syntaxErr *PatternSyntaxError
	return errors.As(err, &syntaxErr)
}

// EngineError is returned when an engine fails while evaluating a compiled
// pattern. Unlike a syntax error it is not specific to one check.
type EngineError struct {
	Engine  string
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: evaluating %q: %v", e.Engine, e.Pattern, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
