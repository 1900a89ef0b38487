// core/edit/edit.go
package edit

/* ----------------------- types --------------------- */

// Class is the relationship between a reference barcode and an observed one,
// allowing at most one edit.
type Class uint8

const (
	Match Class = iota
	Substitution
	Insertion
	Deletion
	Unrelated
)

// Fixed likelihood weights per class. Unrelated carries no weight.
const (
	WeightMatch        = 1.0
	WeightSubstitution = 0.6
	WeightInsertion    = 0.3
	WeightDeletion     = 0.1
)

var classNames = [...]string{
	Match:        "match",
	Substitution: "substitution",
	Insertion:    "insertion",
	Deletion:     "deletion",
	Unrelated:    "unrelated",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Likelihood returns the fixed weight of c (0 for Unrelated).
func (c Class) Likelihood() float64 {
	switch c {
	case Match:
		return WeightMatch
	case Substitution:
		return WeightSubstitution
	case Insertion:
		return WeightInsertion
	case Deletion:
		return WeightDeletion
	default:
		return 0
	}
}

// OneEdit reports whether c is a usable single-edit classification.
func (c Class) OneEdit() bool { return c < Unrelated }

/* ---------------------- helpers -------------------- */

// aligned reports whether a[i:] and b[j:] agree over their common length.
func aligned(a, b string, i, j int) bool {
	for ; i < len(a) && j < len(b); i, j = i+1, j+1 {
		if a[i] != b[j] {
			return false
		}
	}
	return true
}

// firstMismatch returns the first index where a and b differ, or -1 when the
// shorter string is a prefix of the longer one.
func firstMismatch(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

/* ----------------------- Classify ------------------ */

// Classify compares reference against observed under the one-edit assumption.
//
// Strings whose lengths differ by more than one are Unrelated. When lengths
// differ by exactly one, the indel is the single allowed edit: Deletion when
// reference is the longer string, Insertion when observed is. Equal-length
// strings are tested at the first mismatch in fixed order Substitution,
// Deletion, Insertion; the first hypothesis whose remainder aligns wins.
func Classify(reference, observed string) Class {
	lr, lo := len(reference), len(observed)
	d := lr - lo
	if d > 1 || d < -1 {
		return Unrelated
	}

	i := firstMismatch(reference, observed)

	switch d {
	case 1:
		if i < 0 || aligned(reference, observed, i+1, i) {
			return Deletion
		}
		return Unrelated
	case -1:
		if i < 0 || aligned(reference, observed, i, i+1) {
			return Insertion
		}
		return Unrelated
	}

	if i < 0 {
		return Match
	}
	// last base: nothing left to look ahead at
	if i == lr-1 {
		return Substitution
	}
	switch {
	case aligned(reference, observed, i+1, i+1):
		return Substitution
	case aligned(reference, observed, i+1, i):
		return Deletion
	case aligned(reference, observed, i, i+1):
		return Insertion
	}
	return Unrelated
}

// Likelihood is Classify(reference, observed).Likelihood().
func Likelihood(reference, observed string) float64 {
	return Classify(reference, observed).Likelihood()
}
