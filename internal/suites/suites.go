// Package suites embeds the koan suites that ship with the binary.
package suites

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/roach88/koans/internal/harness"
)

//go:embed *.yaml
var files embed.FS

// Names returns the file names of the built-in suites in run order.
func Names() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		// The embedded FS is fixed at build time.
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Load parses one built-in suite by file name.
func Load(name string) (*harness.Suite, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("built-in suite %q: %w", name, err)
	}
	format, err := harness.FormatForPath(path.Base(name))
	if err != nil {
		return nil, err
	}
	suite, err := harness.ParseSuite(data, format)
	if err != nil {
		return nil, fmt.Errorf("built-in suite %q: %w", name, err)
	}
	return suite, nil
}

// Builtin parses every built-in suite.
func Builtin() ([]*harness.Suite, error) {
	var out []*harness.Suite
	for _, name := range Names() {
		s, err := Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
