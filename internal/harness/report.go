package harness

import (
	"fmt"
	"io"
)

// WriteReport writes the human-readable report for one or more suite runs:
// a heading per suite, one line per koan, the reasons for every failed check
// and a final "<passed> of <total> passing" line.
func WriteReport(w io.Writer, results ...*SuiteResult) error {
	ew := &errWriter{w: w}

	for i, r := range results {
		if i > 0 {
			ew.printf("\n")
		}
		ew.printf("%s (%s)\n", r.Title(), r.Engine)

		for _, k := range r.Koans {
			mark := "✓"
			if !k.Passed {
				mark = "✗"
			}
			ew.printf("  %s %s\n", mark, k.Name)

			for _, c := range k.Failures() {
				ew.printf("      %v\n", c.Err)
			}
		}
	}

	passed, total := Totals(results...)
	ew.printf("\n%d of %d passing\n", passed, total)
	return ew.err
}

// errWriter remembers the first write error so the report can be written
// without checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
