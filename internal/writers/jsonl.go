// internal/writers/jsonl.go
package writers

import (
	"io"

	"bcmodel/internal/jsonlutil"
	"bcmodel/internal/output"
)

// StartRecordJSONLWriter streams each Record as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- output.Record, <-chan error) {
	return jsonlutil.Start[output.Record](out, bufSize,
		func(r output.Record) any { return output.ToAPIResolution(r) },
		IsBrokenPipe,
	)
}
