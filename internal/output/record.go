// internal/output/record.go
package output

import "bcmodel-core/edit"

// Row is one candidate of a resolved group, ready for rendering.
type Row struct {
	Barcode     string
	Edit        edit.Class
	Likelihood  float64
	Probability float64
}

// Record is one resolved barcode group. Rows keep the resolver's ascending
// probability order.
type Record struct {
	SourceFile string
	Line       int
	Observed   string
	Count      int
	Rows       []Row
}
