package match

import "regexp"

// goEngine delegates to the standard library regexp package.
type goEngine struct{}

func (goEngine) Name() string { return "go" }

func (e goEngine) Compile(pattern string) (Pattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternSyntaxError{Engine: e.Name(), Pattern: pattern, Err: err}
	}
	return goPattern{re: re}, nil
}

type goPattern struct {
	re *regexp.Regexp
}

func (p goPattern) MatchString(subject string) (bool, error) {
	return p.re.MatchString(subject), nil
}

func (p goPattern) String() string { return p.re.String() }
