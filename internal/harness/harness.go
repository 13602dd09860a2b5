package harness

import (
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/roach88/koans/internal/match"
	"github.com/roach88/koans/internal/testutil"
)

// Harness evaluates assertions with one engine.
//
// A Harness holds no state between runs: every Run and RunSuite call starts
// a fresh sequence clock, so repeated runs produce identical results.
type Harness struct {
	engine match.Engine
	logger *slog.Logger
	filter string
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithFilter restricts Run to koans whose ID matches the glob pattern.
func WithFilter(pattern string) Option {
	return func(h *Harness) {
		h.filter = pattern
	}
}

// New creates a harness that delegates matching to engine.
func New(engine match.Engine, opts ...Option) *Harness {
	h := &Harness{
		engine: engine,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RunSuite evaluates assertions with engine. See Harness.RunSuite.
func RunSuite(engine match.Engine, assertions []Assertion) ([]CheckResult, error) {
	return New(engine).RunSuite(assertions)
}

// Run runs every koan of suite with engine. See Harness.Run.
func Run(engine match.Engine, suite *Suite, opts ...Option) (*SuiteResult, error) {
	return New(engine, opts...).Run(suite)
}

// RunSuite evaluates assertions in order and returns one CheckResult each.
//
// Failed expectations and malformed patterns are recorded in the results.
// Only an engine failure is returned as an error, and it aborts the run.
func (h *Harness) RunSuite(assertions []Assertion) ([]CheckResult, error) {
	clock := testutil.NewDeterministicClock()
	results := make([]CheckResult, 0, len(assertions))

	for i, a := range assertions {
		res, err := h.check(a, i, clock)
		if err != nil {
			return nil, fmt.Errorf("assertion %d: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Run evaluates every koan of suite in declaration order.
func (h *Harness) Run(suite *Suite) (*SuiteResult, error) {
	digest, err := SuiteDigest(suite)
	if err != nil {
		return nil, err
	}

	result := &SuiteResult{
		Suite:       suite.Name,
		Description: suite.Description,
		Engine:      h.engine.Name(),
		Digest:      digest,
		Koans:       make([]KoanResult, 0, len(suite.Koans)),
	}

	clock := testutil.NewDeterministicClock()

	for _, k := range suite.Koans {
		if h.filter != "" {
			ok, err := path.Match(h.filter, k.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !ok {
				continue
			}
		}

		kr := KoanResult{ID: k.ID, Name: k.Name, Passed: true}
		for i, a := range k.Checks() {
			res, err := h.check(a, i, clock)
			if err != nil {
				return nil, fmt.Errorf("koan %s: assertion %d: %w", k.ID, i, err)
			}
			res.Koan = k.ID
			kr.Checks = append(kr.Checks, res)
			if !res.Passed {
				kr.Passed = false
			}
		}

		result.Koans = append(result.Koans, kr)
		result.Total++
		if kr.Passed {
			result.Passed++
		}

		h.logger.Debug("koan evaluated",
			"suite", suite.Name,
			"koan", k.ID,
			"checks", len(kr.Checks),
			"passed", kr.Passed,
		)
	}

	h.logger.Info("suite finished",
		"suite", suite.Name,
		"engine", h.engine.Name(),
		"passed", result.Passed,
		"total", result.Total,
	)

	return result, nil
}

// check evaluates a single assertion.
func (h *Harness) check(a Assertion, index int, clock *testutil.DeterministicClock) (CheckResult, error) {
	res := CheckResult{
		Index:     index,
		Seq:       clock.Next(),
		Assertion: a,
	}

	matched, err := match.Matches(h.engine, a.Subject, a.Pattern)
	if err != nil {
		if !match.IsPatternSyntax(err) {
			return CheckResult{}, err
		}
		h.logger.Warn("pattern rejected",
			"engine", h.engine.Name(),
			"pattern", a.Pattern,
			"error", err,
		)
		res.Actual = OutcomeError
		res.Err = err
		return res, nil
	}

	res.Actual = outcomeOf(matched)
	res.Err = assertOutcome(a, res.Actual)
	res.Passed = res.Err == nil
	return res, nil
}
