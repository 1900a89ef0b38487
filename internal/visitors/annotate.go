// internal/visitors/annotate.go
package visitors

import (
	"bcmodel-core/edit"
	"bcmodel/internal/output"
	"bcmodel/internal/pipeline"
)

// Annotate attaches the edit class and likelihood of every candidate to a
// resolution. A singleton group is classified too, for display only; its
// probability stays 1.0 whatever the class.
type Annotate struct{}

func (Annotate) Visit(r pipeline.Resolution) (keep bool, out output.Record, err error) {
	out = output.Record{
		SourceFile: r.SourceFile,
		Line:       r.Group.Line,
		Observed:   r.Group.Observed,
		Count:      r.Group.Count,
		Rows:       make([]output.Row, 0, len(r.Assignments)),
	}
	for _, a := range r.Assignments {
		cls := edit.Classify(a.Barcode, r.Group.Observed)
		out.Rows = append(out.Rows, output.Row{
			Barcode:     a.Barcode,
			Edit:        cls,
			Likelihood:  cls.Likelihood(),
			Probability: a.Probability,
		})
	}
	return true, out, nil
}
