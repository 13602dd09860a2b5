package harness

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReportGolden(t *testing.T) {
	suite, err := LoadSuite("testdata/suites/mixed.yaml")
	require.NoError(t, err)

	result, err := Run(engineFor(t, "go"), suite)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, result))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "mixed_report", buf.Bytes())
}

func TestWriteReportMultipleSuites(t *testing.T) {
	a := &SuiteResult{Suite: "a", Engine: "go", Passed: 1, Total: 1,
		Koans: []KoanResult{{ID: "k", Name: "first koan", Passed: true}}}
	b := &SuiteResult{Suite: "b", Description: "Second", Engine: "go", Passed: 1, Total: 2,
		Koans: []KoanResult{
			{ID: "x", Name: "second koan", Passed: true},
			{ID: "y", Name: "third koan", Passed: false},
		}}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, a, b))

	out := buf.String()
	assert.Contains(t, out, "a (go)\n  ✓ first koan\n")
	assert.Contains(t, out, "\nSecond (go)\n")
	assert.Contains(t, out, "  ✗ third koan\n")
	assert.Contains(t, out, "\n2 of 3 passing\n")
}

func TestWriteReportPatternSyntaxError(t *testing.T) {
	suite, err := LoadSuite("testdata/suites/broken_pattern.yaml")
	require.NoError(t, err)

	result, err := Run(engineFor(t, "go"), suite)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, result))
	assert.Contains(t, buf.String(), "✗ unclosed group")
	assert.Contains(t, buf.String(), `go: invalid pattern "(abc"`)
	assert.Contains(t, buf.String(), "1 of 2 passing")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportPropagatesWriteError(t *testing.T) {
	err := WriteReport(failWriter{}, &SuiteResult{Suite: "s", Engine: "go"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
