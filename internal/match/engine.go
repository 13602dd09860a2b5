package match

import (
	"fmt"
	"sort"
)

// DefaultEngine is the engine used when none is selected.
const DefaultEngine = "go"

// Engine compiles patterns for one regular-expression dialect.
type Engine interface {
	// Name is the registry key ("go", "re2", "ecmascript").
	Name() string

	// Compile parses pattern. A malformed pattern yields a *PatternSyntaxError.
	Compile(pattern string) (Pattern, error)
}

// Pattern is a compiled pattern.
type Pattern interface {
	// MatchString reports whether subject contains a match of the pattern.
	// Anchoring is the pattern's business (^ and $).
	MatchString(subject string) (bool, error)

	// String returns the source text of the pattern.
	String() string
}

var engines = map[string]Engine{
	goEngine{}.Name():         goEngine{},
	re2Engine{}.Name():        re2Engine{},
	ecmascriptEngine{}.Name(): ecmascriptEngine{},
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q: must be one of %v", name, Names())
	}
	return e, nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Matches compiles pattern with e and reports whether subject matches it.
func Matches(e Engine, subject, pattern string) (bool, error) {
	p, err := e.Compile(pattern)
	if err != nil {
		return false, err
	}
	ok, err := p.MatchString(subject)
	if err != nil {
		return false, &EngineError{Engine: e.Name(), Pattern: pattern, Err: err}
	}
	return ok, nil
}
