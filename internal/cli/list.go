package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListOutput is the JSON payload of the list command.
type ListOutput struct {
	Suites []SuiteListing `json:"suites"`
}

// SuiteListing names the koans of one suite.
type SuiteListing struct {
	Suite       string        `json:"suite"`
	Description string        `json:"description,omitempty"`
	Koans       []KoanListing `json:"koans"`
}

// KoanListing is one koan without its assertions.
type KoanListing struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Lesson string `json:"lesson,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [suite-file|dir...]",
		Short: "List the koans of each suite",
		Long: `List suites and their koans in declaration order.

With no arguments the built-in suites are listed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loaded, err := loadSuites(paths)
	if err != nil {
		return commandError(formatter, loadErrorCode(err), err)
	}

	out := ListOutput{Suites: make([]SuiteListing, 0, len(loaded))}
	for _, s := range loaded {
		sl := SuiteListing{Suite: s.Name, Description: s.Description}
		for _, k := range s.Koans {
			sl.Koans = append(sl.Koans, KoanListing{ID: k.ID, Name: k.Name, Lesson: k.Lesson})
		}
		out.Suites = append(out.Suites, sl)
	}

	if formatter.IsJSON() {
		if err := formatter.Success(out); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
		return nil
	}

	w := cmd.OutOrStdout()
	for i, sl := range out.Suites {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d koans)\n", sl.Suite, len(sl.Koans))
		for _, k := range sl.Koans {
			fmt.Fprintf(w, "  %-26s %s\n", k.ID, k.Name)
			if opts.Verbose && k.Lesson != "" {
				fmt.Fprintf(w, "  %-26s %s\n", "", k.Lesson)
			}
		}
	}
	return nil
}
