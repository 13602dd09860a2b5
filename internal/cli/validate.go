package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/koans/internal/harness"
	"github.com/roach88/koans/internal/match"
)

// ValidationOutput is the JSON payload of the validate command.
type ValidationOutput struct {
	Valid  bool              `json:"valid"`
	Suites []SuiteValidation `json:"suites"`
}

// SuiteValidation reports the patterns of one suite.
type SuiteValidation struct {
	Suite    string   `json:"suite"`
	Patterns int      `json:"patterns"`
	Errors   []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [suite-file|dir...]",
		Short: "Check that suites load and every pattern compiles",
		Long: `Load suites and compile every pattern with the selected engine without
evaluating any assertion.

With no arguments the built-in suites are validated.

Exit codes:
  0 - every suite is valid
  1 - one or more patterns do not compile
  2 - a suite could not be loaded`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	engine, err := match.Lookup(opts.Engine)
	if err != nil {
		return commandError(formatter, ErrCodeEngine, WrapExitError(ExitCommandError, "invalid engine", err))
	}

	loaded, err := loadSuites(paths)
	if err != nil {
		return commandError(formatter, loadErrorCode(err), err)
	}

	out := ValidationOutput{Valid: true, Suites: make([]SuiteValidation, 0, len(loaded))}
	invalid := 0
	for _, s := range loaded {
		sv := validatePatterns(engine, s)
		if len(sv.Errors) > 0 {
			out.Valid = false
			invalid += len(sv.Errors)
		}
		out.Suites = append(out.Suites, sv)
	}

	if formatter.IsJSON() {
		var failure *CLIError
		if !out.Valid {
			failure = &CLIError{
				Code:    ErrCodeInvalidSyntax,
				Message: fmt.Sprintf("%d invalid pattern(s)", invalid),
			}
		}
		if err := formatter.Result(out, failure); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	} else {
		w := cmd.OutOrStdout()
		for _, sv := range out.Suites {
			if len(sv.Errors) == 0 {
				fmt.Fprintf(w, "✓ %s (%d patterns)\n", sv.Suite, sv.Patterns)
				continue
			}
			fmt.Fprintf(w, "✗ %s (%d patterns)\n", sv.Suite, sv.Patterns)
			for _, e := range sv.Errors {
				fmt.Fprintf(w, "    %s\n", e)
			}
		}
	}

	if !out.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d invalid pattern(s)", invalid))
	}
	return nil
}

// validatePatterns compiles each distinct pattern of s once, including the
// meta-patterns of source checks.
func validatePatterns(engine match.Engine, s *harness.Suite) SuiteValidation {
	sv := SuiteValidation{Suite: s.Name}
	seen := make(map[string]bool)

	for _, k := range s.Koans {
		for _, a := range k.Checks() {
			if seen[a.Pattern] {
				continue
			}
			seen[a.Pattern] = true
			sv.Patterns++

			if _, err := engine.Compile(a.Pattern); err != nil {
				sv.Errors = append(sv.Errors, fmt.Sprintf("koan %s: %v", k.ID, err))
			}
		}
	}
	return sv
}
