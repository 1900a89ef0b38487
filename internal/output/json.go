// internal/output/json.go
package output

import (
	"io"

	"bcmodel/internal/jsonutil"
	"bcmodel/pkg/api"
)

// ToAPIResolution converts a Record to the stable wire schema (v1).
func ToAPIResolution(r Record) api.ResolutionV1 {
	v := api.ResolutionV1{
		Observed:   r.Observed,
		Count:      r.Count,
		Candidates: make([]api.AssignmentV1, 0, len(r.Rows)),
		SourceFile: r.SourceFile,
		Line:       r.Line,
	}
	for _, row := range r.Rows {
		v.Candidates = append(v.Candidates, api.AssignmentV1{
			Barcode:     row.Barcode,
			Edit:        row.Edit.String(),
			Likelihood:  row.Likelihood,
			Probability: row.Probability,
		})
	}
	return v
}

func toAPIResolutions(list []Record) []api.ResolutionV1 {
	out := make([]api.ResolutionV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResolution(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 resolutions (pretty-indented).
func WriteJSON(w io.Writer, list []Record) error {
	return jsonutil.EncodePretty(w, toAPIResolutions(list))
}
