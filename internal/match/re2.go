package match

import (
	"github.com/wasilibs/go-re2"
)

// re2Engine runs patterns through the C++ RE2 library.
type re2Engine struct{}

func (re2Engine) Name() string { return "re2" }

func (e re2Engine) Compile(pattern string) (Pattern, error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, &PatternSyntaxError{Engine: e.Name(), Pattern: pattern, Err: err}
	}
	return re2Pattern{re: re}, nil
}

type re2Pattern struct {
	re *re2.Regexp
}

func (p re2Pattern) MatchString(subject string) (bool, error) {
	return p.re.MatchString(subject), nil
}

func (p re2Pattern) String() string { return p.re.String() }
