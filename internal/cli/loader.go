package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/roach88/koans/internal/harness"
	"github.com/roach88/koans/internal/suites"
)

var errSuitePathNotFound = errors.New("suite path not found")

// loadSuites loads the suites named by paths. Directories are searched for
// .yaml, .yml and .cue files. With no paths the built-in suites are used.
func loadSuites(paths []string) ([]*harness.Suite, error) {
	if len(paths) == 0 {
		all, err := suites.Builtin()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load built-in suites", err)
		}
		return all, nil
	}

	files, err := findSuiteFiles(paths)
	if err != nil {
		return nil, err
	}

	loaded := make([]*harness.Suite, 0, len(files))
	for _, f := range files {
		s, err := harness.LoadSuite(f)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load suite", err)
		}
		loaded = append(loaded, s)
	}
	return loaded, nil
}

// findSuiteFiles expands paths into suite files in a stable order.
func findSuiteFiles(paths []string) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if os.IsNotExist(err) {
			return nil, WrapExitError(ExitCommandError, p, errSuitePathNotFound)
		}
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to access suite path", err)
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if _, ferr := harness.FormatForPath(path); ferr == nil {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to scan suite directory", err)
		}
	}

	if len(files) == 0 {
		return nil, NewExitError(ExitCommandError, "no suite files found")
	}
	return files, nil
}

// loadErrorCode maps a loadSuites failure to its JSON error code.
func loadErrorCode(err error) string {
	if errors.Is(err, errSuitePathNotFound) {
		return ErrCodeNotFound
	}
	return ErrCodeInvalidSuite
}
