// core/resolve/resolve.go
package resolve

import (
	"errors"
	"fmt"
	"sort"

	"bcmodel-core/edit"
)

// Assignment pairs a true barcode with its posterior probability for one
// observed barcode.
type Assignment struct {
	Barcode     string
	Probability float64
}

// ErrZeroNormalizer is returned when candidate likelihoods sum to zero,
// including the empty candidate set.
var ErrZeroNormalizer = errors.New("barcode model: zero likelihood normalizer")

// MappingError reports a candidate that is not within one edit of the
// observed barcode. Upstream grouping must never produce such a pair.
type MappingError struct {
	Reference string
	Observed  string
	Class     edit.Class
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("barcode model received wrong barcode mapping: reference=%s observed=%s (%s)",
		e.Reference, e.Observed, e.Class)
}

// IsMappingError reports whether err carries a *MappingError.
func IsMappingError(err error) bool {
	var me *MappingError
	return errors.As(err, &me)
}

// Resolve distributes probability over candidates for observed. The result
// holds one Assignment per candidate, sorted by ascending probability; ties
// keep input order.
func Resolve(observed string, candidates []string) ([]Assignment, error) {
	if len(candidates) == 1 {
		return []Assignment{{Barcode: candidates[0], Probability: 1.0}}, nil
	}

	probs := make([]float64, len(candidates))
	norm := 0.0
	for k, c := range candidates {
		cls := edit.Classify(c, observed)
		if !cls.OneEdit() {
			return nil, &MappingError{Reference: c, Observed: observed, Class: cls}
		}
		probs[k] = cls.Likelihood()
		norm += probs[k]
	}
	if norm == 0 {
		return nil, fmt.Errorf("%w (observed=%s, %d candidates)", ErrZeroNormalizer, observed, len(candidates))
	}

	out := make([]Assignment, len(candidates))
	for k, c := range candidates {
		out[k] = Assignment{Barcode: c, Probability: probs[k] / norm}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Probability < out[b].Probability })
	return out, nil
}

// MustResolve is like Resolve but panics on a precondition violation.
func MustResolve(observed string, candidates []string) []Assignment {
	out, err := Resolve(observed, candidates)
	if err != nil {
		panic(err)
	}
	return out
}
