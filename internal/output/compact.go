package output

import (
	"fmt"
	"io"
	"os"
)

// Compact renders scan results in one-line-per-record compact format.
func Compact(w io.Writer, items []Item) {
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "No TODOs found.")
		return
	}

	for _, it := range items {
		fmt.Fprintf(w, "[%s] %s %s (%s)\n", it.Urgency, it.Due, it.Text, it.Source())
	}
}
