// Command koans runs regular-expression koans.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/koans/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if cli.ShouldPrint(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
