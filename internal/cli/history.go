package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/koans/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB     string
	Suite  string
	Limit  int
	RunID  string
	Delete bool
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs from a run ledger",
		Long: `List runs recorded with "koans run --record", newest first.

With --run, print every check of that run instead. With --run and --delete,
remove that run and its checks from the ledger.`,
		Example: `  # Last ten runs
  koans history --db koans.db --limit 10

  # Checks of one run
  koans history --db koans.db --run 0192f0c4-...

  # Forget one run
  koans history --db koans.db --run 0192f0c4-... --delete`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "run ledger database path (required)")
	cmd.Flags().StringVar(&opts.Suite, "suite", "", "only show runs of this suite")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to show (0 for all)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the checks of this run")
	cmd.Flags().BoolVar(&opts.Delete, "delete", false, "delete the run named by --run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Limit < 0 {
		return commandError(formatter, ErrCodeGeneric,
			NewExitError(ExitCommandError, fmt.Sprintf("invalid limit %d: must be >= 0", opts.Limit)))
	}

	if opts.Delete && opts.RunID == "" {
		return commandError(formatter, ErrCodeGeneric,
			NewExitError(ExitCommandError, "--delete requires --run"))
	}

	// Opening creates the database; a typo in --db should not.
	if _, err := os.Stat(opts.DB); err != nil {
		return commandError(formatter, ErrCodeNotFound,
			WrapExitError(ExitCommandError, "run ledger not found", err))
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return commandError(formatter, ErrCodeLedger,
			WrapExitError(ExitCommandError, "failed to open run ledger", err))
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Delete {
		return deleteRun(ctx, st, opts.RunID, formatter)
	}
	if opts.RunID != "" {
		return showRun(ctx, st, opts.RunID, formatter)
	}
	return listRuns(ctx, st, opts, formatter)
}

func listRuns(ctx context.Context, st *store.Store, opts *HistoryOptions, f *OutputFormatter) error {
	runs, err := st.ListRuns(ctx, opts.Suite, opts.Limit)
	if err != nil {
		return commandError(f, ErrCodeLedger, WrapExitError(ExitCommandError, "failed to list runs", err))
	}

	if f.IsJSON() {
		if runs == nil {
			runs = []store.Run{}
		}
		return f.Success(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(f.Writer, "No runs recorded")
		return nil
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSUITE\tENGINE\tPASSING\tRECORDED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%s\n", r.ID, r.Suite, r.Engine, r.Passed, r.Total, r.CreatedAt)
	}
	return tw.Flush()
}

func showRun(ctx context.Context, st *store.Store, id string, f *OutputFormatter) error {
	run, err := st.ReadRun(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		return commandError(f, ErrCodeNotFound,
			WrapExitError(ExitCommandError, fmt.Sprintf("run %s", id), err))
	}
	if err != nil {
		return commandError(f, ErrCodeLedger, WrapExitError(ExitCommandError, "failed to read run", err))
	}

	if f.IsJSON() {
		return f.Success(run)
	}

	fmt.Fprintf(f.Writer, "%s (%s) %d of %d passing\n", run.Suite, run.Engine, run.Passed, run.Total)
	fmt.Fprintf(f.Writer, "digest %s\n\n", run.SuiteDigest)
	for _, c := range run.Checks {
		mark := "✓"
		if !c.Passed {
			mark = "✗"
		}
		fmt.Fprintf(f.Writer, "  %s %s: %q =~ /%s/ expect %s, got %s\n",
			mark, c.Koan, c.Subject, c.Pattern, c.Expect, c.Actual)
		if c.Error != "" && f.Verbose {
			fmt.Fprintf(f.Writer, "      %s\n", c.Error)
		}
	}
	return nil
}

// DeleteOutput is the JSON payload of history --delete.
type DeleteOutput struct {
	Deleted string `json:"deleted"`
}

func deleteRun(ctx context.Context, st *store.Store, id string, f *OutputFormatter) error {
	err := st.DeleteRun(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		return commandError(f, ErrCodeNotFound,
			WrapExitError(ExitCommandError, fmt.Sprintf("run %s", id), err))
	}
	if err != nil {
		return commandError(f, ErrCodeLedger, WrapExitError(ExitCommandError, "failed to delete run", err))
	}

	if f.IsJSON() {
		return f.Success(DeleteOutput{Deleted: id})
	}
	fmt.Fprintf(f.Writer, "Deleted run %s\n", id)
	return nil
}
