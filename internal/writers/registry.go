// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// recordWriters maps an output format to its handler. Handlers register in
// init() blocks.
var recordWriters = map[string]func(w io.Writer, args recordArgs) error{}

// registerRecord installs fn for format (last wins).
func registerRecord(format string, fn func(io.Writer, recordArgs) error) { recordWriters[format] = fn }

// writeRecords dispatches to the handler registered for format.
func writeRecords(format string, w io.Writer, args recordArgs) error {
	fn, ok := recordWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, args)
}
