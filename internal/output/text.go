// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// RowRenderer returns an optional block printed after a candidate row
// (empty = nothing). Lines should already carry their own prefix.
type RowRenderer func(observed string, row Row) string

func writeRecord(w io.Writer, r Record, render RowRenderer) error {
	for i, row := range r.Rows {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r, i+1, row)); err != nil {
			return err
		}
		if render == nil {
			continue
		}
		if block := render(r.Observed, row); block != "" {
			if _, err := io.WriteString(w, block); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTextWithRenderer prints the header (optional) and one row per candidate.
func WriteTextWithRenderer(w io.Writer, list []Record, header bool, render RowRenderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRecord(w, r, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamTextWithRenderer is WriteTextWithRenderer over a channel. The channel
// is always drained, even after a write error, so producers never block.
func StreamTextWithRenderer(w io.Writer, in <-chan Record, header bool, render RowRenderer) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for r := range in {
		if err != nil {
			continue
		}
		err = writeRecord(w, r, render)
	}
	return err
}
