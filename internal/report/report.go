// Package report renders the aggregated benchmark result stream for humans,
// with an optional JSON mode for scripting.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/strbench/strbench"
)

// Writer renders benchmark suites to an output stream.
type Writer struct {
	out  io.Writer
	json bool
}

// New returns a Writer. With asJSON set the whole result stream is emitted
// as one JSON document instead of the human-readable table.
func New(out io.Writer, asJSON bool) *Writer {
	return &Writer{out: out, json: asJSON}
}

// Write renders all suites. Mismatching entries are highlighted in red so a
// wrong kernel stands out in a wall of throughput lines.
func (w *Writer) Write(suites []strbench.Suite) error {
	if w.json {
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(suites)
	}

	header := color.New(color.Bold)
	bad := color.New(color.FgRed)

	for _, s := range suites {
		if _, err := header.Fprintf(w.out, "%s / %s\n", s.Corpus, s.Category); err != nil {
			return err
		}
		for _, r := range s.Results {
			line := fmt.Sprintf("  %-32s %10.1f MB/s %12d ops %6d mismatches",
				r.Name, r.Throughput/1e6, r.Operations, r.Mismatches)
			var err error
			if r.Mismatches > 0 {
				_, err = bad.Fprintln(w.out, line)
			} else {
				_, err = fmt.Fprintln(w.out, line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Mismatches returns the total mismatch count across all suites.
func Mismatches(suites []strbench.Suite) int64 {
	var total int64
	for _, s := range suites {
		for _, r := range s.Results {
			total += r.Mismatches
		}
	}
	return total
}
