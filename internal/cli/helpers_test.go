package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const passingSuite = `name: passing
description: Passing Koans
koans:
  - id: optional
    name: optional letters
    pattern: '^so?o?n$'
    assertions:
      - { subject: son, expect: match }
      - { subject: sooon, expect: no_match }
  - id: exact
    name: exact count
    pattern: '^x{3}$'
    assertions:
      - { subject: xxx, expect: match }
      - { subject: xxxx, expect: no_match }
    source_must_match: ['\{']
`

const failingSuite = `name: failing
description: Failing Koans
koans:
  - id: whitespace
    name: one or more whitespace
    pattern: '^x\s*y$'
    assertions:
      - { subject: 'x y', expect: match }
      - { subject: xy, expect: no_match }
  - id: optional
    name: optional letters
    pattern: '^so?o?n$'
    assertions:
      - { subject: son, expect: match }
`

const brokenSuite = `name: broken
koans:
  - id: unclosed
    name: unclosed group
    pattern: '(abc'
    assertions:
      - { subject: abc, expect: match }
  - id: fine
    name: still runs
    pattern: '^abc$'
    assertions:
      - { subject: abc, expect: match }
`

// writeSuiteFile writes content to name inside dir and returns the path.
func writeSuiteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
