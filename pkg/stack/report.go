package stack

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/capitalart/ezy/pkg/selection"
)

// Report prints the selection to out without touching any file contents.
// It is the dry-run surface: zero matches prints "0 files" and succeeds.
func Report(out io.Writer, label string, result selection.Result) {
	heading := color.New(color.Bold, color.FgCyan)
	dim := color.New(color.Faint)

	heading.Fprintf(out, "%s: %d files\n", label, result.Total())
	if result.Empty() {
		return
	}
	for _, f := range result.DirFiles {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.RootFiles) > 0 {
		dim.Fprintln(out, "  root files:")
		for _, f := range result.RootFiles {
			fmt.Fprintf(out, "  %s\n", f)
		}
	}
}
