package match

import (
	"time"

	"github.com/dlclark/regexp2"
)

// ecmascriptOptions selects JavaScript-style classes (\d is 0-9, \w is ASCII)
// and RE2 anchoring, so $ only matches at the very end of the subject.
const ecmascriptOptions = regexp2.ECMAScript | regexp2.RE2

// ecmascriptTimeout bounds a single backtracking match.
const ecmascriptTimeout = 2 * time.Second

// ecmascriptEngine delegates to regexp2, a backtracking engine.
type ecmascriptEngine struct{}

func (ecmascriptEngine) Name() string { return "ecmascript" }

func (e ecmascriptEngine) Compile(pattern string) (Pattern, error) {
	re, err := regexp2.Compile(pattern, ecmascriptOptions)
	if err != nil {
		return nil, &PatternSyntaxError{Engine: e.Name(), Pattern: pattern, Err: err}
	}
	re.MatchTimeout = ecmascriptTimeout
	return ecmascriptPattern{re: re}, nil
}

type ecmascriptPattern struct {
	re *regexp2.Regexp
}

func (p ecmascriptPattern) MatchString(subject string) (bool, error) {
	return p.re.MatchString(subject)
}

func (p ecmascriptPattern) String() string { return p.re.String() }
