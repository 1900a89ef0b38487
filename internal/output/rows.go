// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
)

// FormatFloat renders probabilities/likelihoods with 12 significant digits,
// which hides division noise such as 0.6/1.6 = 0.37499999999999994.
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 12, 64) }

// FormatRowTSV returns the 7 columns for one candidate (no trailing newline).
// rank is 1-based in ascending-probability order.
func FormatRowTSV(r Record, rank int, row Row) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%s\t%s\t%s",
		r.Observed, r.Count, rank,
		row.Barcode, row.Edit,
		FormatFloat(row.Likelihood), FormatFloat(row.Probability),
	)
}
