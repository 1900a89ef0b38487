// internal/common/sort.go
package common

import (
	"sort"

	"bcmodel/internal/output"
)

// LessRecord orders records by observed barcode (for --sort).
func LessRecord(a, b output.Record) bool {
	return a.Observed < b.Observed
}

// SortRecords sorts by observed barcode; equal barcodes keep input order.
func SortRecords(list []output.Record) {
	sort.SliceStable(list, func(i, j int) bool { return LessRecord(list[i], list[j]) })
}
