// core/barcode/validate.go
package barcode

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Alphabet lists the symbols a barcode may contain.
const Alphabet = "ACGTN"

// Normalize applies NFKC, removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate returns a normalized barcode or an error if any symbol is outside Alphabet.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return s, fmt.Errorf("empty barcode")
	}
	for i, r := range s {
		if !strings.ContainsRune(Alphabet, r) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T N", r, i+1)
		}
	}
	return s, nil
}
