// pkg/api/resolution_v1.go
package api

// AssignmentV1 is one candidate true barcode with its posterior probability.
type AssignmentV1 struct {
	Barcode     string  `json:"barcode"`
	Edit        string  `json:"edit"` // "match" | "substitution" | "insertion" | "deletion" | "unrelated"
	Likelihood  float64 `json:"likelihood"`
	Probability float64 `json:"probability"`
}

// ResolutionV1 is the stable JSON/JSONL schema for one resolved barcode group.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Candidates are ordered by ascending probability.
type ResolutionV1 struct {
	Observed   string         `json:"observed"`
	Count      int            `json:"count,omitempty"`
	Candidates []AssignmentV1 `json:"candidates"`
	SourceFile string         `json:"source_file,omitempty"`
	Line       int            `json:"line,omitempty"`
}
