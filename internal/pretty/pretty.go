package pretty

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Options control the ASCII rendering.
type Options struct {
	// Prefix starts every line so the block stays a TSV comment.
	Prefix string

	// Glyphs
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "*"
	GapGlyph      string // default "-"
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Prefix:        "# ",
	MatchGlyph:    "|",
	MismatchGlyph: "*",
	GapGlyph:      "-",
}

const (
	labelTrue = "true "
	labelObs  = "obs  "
	labelPad  = "     "
)

type rows struct {
	ref, mid, obs strings.Builder
}

func (r *rows) equal(s string, o Options) {
	r.ref.WriteString(s)
	r.obs.WriteString(s)
	r.mid.WriteString(strings.Repeat(o.MatchGlyph, len(s)))
}

// pair renders a deleted run (reference only) next to an inserted run
// (observed only): overlapping bases line up as substitutions, the rest as gaps.
func (r *rows) pair(del, ins string, o Options) {
	n := len(del)
	if len(ins) < n {
		n = len(ins)
	}
	r.ref.WriteString(del[:n])
	r.obs.WriteString(ins[:n])
	r.mid.WriteString(strings.Repeat(o.MismatchGlyph, n))

	if rest := del[n:]; rest != "" {
		r.ref.WriteString(rest)
		r.obs.WriteString(strings.Repeat(o.GapGlyph, len(rest)))
		r.mid.WriteString(strings.Repeat(" ", len(rest)))
	}
	if rest := ins[n:]; rest != "" {
		r.ref.WriteString(strings.Repeat(o.GapGlyph, len(rest)))
		r.obs.WriteString(rest)
		r.mid.WriteString(strings.Repeat(" ", len(rest)))
	}
}

// Align returns the gapped reference row, the marker row and the gapped
// observed row for a character diff of reference → observed.
func Align(reference, observed string, o Options) (ref, mid, obs string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(reference, observed, false)

	var r rows
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			r.equal(d.Text, o)
		case diffmatchpatch.DiffDelete:
			ins := ""
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				ins = diffs[i+1].Text
				i++
			}
			r.pair(d.Text, ins, o)
		case diffmatchpatch.DiffInsert:
			del := ""
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffDelete {
				del = diffs[i+1].Text
				i++
			}
			r.pair(del, d.Text, o)
		}
	}
	return r.ref.String(), r.mid.String(), r.obs.String()
}

// RenderPairWithOptions draws a three-line alignment block of a true barcode
// against the observed barcode, each line ending in '\n'.
func RenderPairWithOptions(reference, observed string, o Options) string {
	ref, mid, obs := Align(reference, observed, o)
	var b strings.Builder
	b.WriteString(o.Prefix + labelTrue + ref + "\n")
	b.WriteString(o.Prefix + labelPad + strings.TrimRight(mid, " ") + "\n")
	b.WriteString(o.Prefix + labelObs + obs + "\n")
	return b.String()
}

// RenderPair uses DefaultOptions.
func RenderPair(reference, observed string) string {
	return RenderPairWithOptions(reference, observed, DefaultOptions)
}
