package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/koans/internal/match"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Engine  string // match engine name
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the koans CLI.
//
// Run without a subcommand it behaves like "koans run": every built-in koan
// is evaluated and the report printed.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "koans",
		Short: "Regular-expression koans",
		Long: `Learn regular-expression syntax by fixing patterns until every koan passes.

Run with no arguments to evaluate the built-in koans. Exit status is 0 when
every koan passes and 1 otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := match.Lookup(opts.Engine); err != nil {
				return WrapExitError(ExitCommandError, "invalid engine", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKoans(&RunOptions{RootOptions: opts}, nil, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Engine, "engine", match.DefaultEngine,
		fmt.Sprintf("regular-expression engine (%v)", match.Names()))

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
