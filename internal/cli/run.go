package cli

import (
	"context"
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/roach88/koans/internal/harness"
	"github.com/roach88/koans/internal/match"
	"github.com/roach88/koans/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Filter string // glob over koan IDs
	Record string // run ledger database path; empty disables recording

	// IDs names recorded runs. Defaults to UUIDv7.
	IDs store.IDGenerator
}

// RunOutput is the JSON payload of the run command.
type RunOutput struct {
	Suites []SuiteOutput `json:"suites"`
	Passed int           `json:"passed"`
	Total  int           `json:"total"`
}

// SuiteOutput summarizes one suite run.
type SuiteOutput struct {
	Suite  string       `json:"suite"`
	Engine string       `json:"engine"`
	Digest string       `json:"digest"`
	RunID  string       `json:"run_id,omitempty"`
	Passed int          `json:"passed"`
	Total  int          `json:"total"`
	Koans  []KoanOutput `json:"koans"`
}

// KoanOutput is the pass/fail line of one koan.
type KoanOutput struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite-file|dir...]",
		Short: "Run koan suites and print the report",
		Long: `Run koan suites and print one line per koan followed by a summary.

With no arguments the built-in suites are run. Arguments may be YAML (.yaml,
.yml) or CUE (.cue) suite files, or directories containing them.

Exit codes:
  0 - every koan passed
  1 - one or more koans failed
  2 - command error (bad suite, unknown engine, engine failure)`,
		Example: `  # Run the built-in koans
  koans run

  # Run only the quantifier koans against the RE2 engine
  koans run --filter 'exact-*' --engine re2

  # Run a custom suite and record the result
  koans run ./my-koans.yaml --record koans.db`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKoans(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run koans whose ID matches this glob")
	cmd.Flags().StringVar(&opts.Record, "record", "", "record results in this SQLite database")

	return cmd
}

func runKoans(opts *RunOptions, paths []string, cmd *cobra.Command) error {
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

	if opts.Filter != "" {
		if _, err := path.Match(opts.Filter, ""); err != nil {
			return commandError(formatter, ErrCodeGeneric,
				WrapExitError(ExitCommandError, "invalid filter pattern", err))
		}
	}

	loaded, err := loadSuites(paths)
	if err != nil {
		return commandError(formatter, loadErrorCode(err), err)
	}

	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	h := harness.New(engine, harness.WithLogger(logger), harness.WithFilter(opts.Filter))

	results := make([]*harness.SuiteResult, 0, len(loaded))
	for _, s := range loaded {
		formatter.VerboseLog("Running suite %s with %s engine", s.Name, engine.Name())
		r, err := h.Run(s)
		if err != nil {
			return commandError(formatter, ErrCodeEngine,
				WrapExitError(ExitCommandError, fmt.Sprintf("suite %s failed to run", s.Name), err))
		}
		results = append(results, r)
	}

	if _, total := harness.Totals(results...); total == 0 && opts.Filter != "" {
		return commandError(formatter, ErrCodeGeneric,
			NewExitError(ExitCommandError, fmt.Sprintf("no koans match filter %q", opts.Filter)))
	}

	var runIDs []string
	if opts.Record != "" {
		runIDs, err = recordRuns(cmd.Context(), opts, results)
		if err != nil {
			return commandError(formatter, ErrCodeLedger, err)
		}
		formatter.VerboseLog("Recorded %d run(s) in %s", len(runIDs), opts.Record)
	}

	passed, total := harness.Totals(results...)

	if formatter.IsJSON() {
		out := newRunOutput(results, runIDs)
		var failure *CLIError
		if passed < total {
			failure = &CLIError{
				Code:    ErrCodeKoansFailed,
				Message: fmt.Sprintf("%d of %d koans failing", total-passed, total),
			}
		}
		if err := formatter.Result(out, failure); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	} else {
		if err := harness.WriteReport(cmd.OutOrStdout(), results...); err != nil {
			return WrapExitError(ExitCommandError, "failed to write report", err)
		}
	}

	if passed < total {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d koans failing", total-passed, total))
	}
	return nil
}

// recordRuns writes each result to the ledger and returns the run IDs in
// result order.
func recordRuns(ctx context.Context, opts *RunOptions, results []*harness.SuiteResult) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Record)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open run ledger", err)
	}
	defer st.Close()

	ids := opts.IDs
	if ids == nil {
		ids = store.UUIDv7Generator{}
	}

	runIDs := make([]string, 0, len(results))
	for _, r := range results {
		id := ids.NewID()
		if err := st.WriteRun(ctx, store.NewRun(id, r)); err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to record run", err)
		}
		runIDs = append(runIDs, id)
	}
	return runIDs, nil
}

func newRunOutput(results []*harness.SuiteResult, runIDs []string) RunOutput {
	out := RunOutput{Suites: make([]SuiteOutput, 0, len(results))}
	for i, r := range results {
		so := SuiteOutput{
			Suite:  r.Suite,
			Engine: r.Engine,
			Digest: r.Digest,
			Passed: r.Passed,
			Total:  r.Total,
			Koans:  make([]KoanOutput, 0, len(r.Koans)),
		}
		if i < len(runIDs) {
			so.RunID = runIDs[i]
		}
		for _, k := range r.Koans {
			ko := KoanOutput{ID: k.ID, Name: k.Name, Passed: k.Passed}
			for _, c := range k.Failures() {
				ko.Failures = append(ko.Failures, c.Err.Error())
			}
			so.Koans = append(so.Koans, ko)
		}
		out.Suites = append(out.Suites, so)
		out.Passed += r.Passed
		out.Total += r.Total
	}
	return out
}

// commandError reports a fatal error in JSON mode and passes err through
// so the process exits with its code.
func commandError(f *OutputFormatter, code string, err error) error {
	if f.IsJSON() {
		_ = f.Error(code, err.Error(), nil)
	}
	return err
}
