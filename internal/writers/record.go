// internal/writers/record.go
package writers

import (
	"io"

	"bcmodel/internal/common"
	"bcmodel/internal/output"
	"bcmodel/internal/pretty"
)

type recordArgs struct {
	Sort   bool
	Header bool
	Pretty bool
	Opt    pretty.Options
	In     <-chan output.Record
}

func drainRecords(ch <-chan output.Record) []output.Record {
	list := make([]output.Record, 0, 128)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON array
	registerRecord(output.FormatJSON, func(w io.Writer, args recordArgs) error {
		list := drainRecords(args.In)
		if args.Sort {
			common.SortRecords(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming (--sort buffers first)
	registerRecord(output.FormatJSONL, func(w io.Writer, args recordArgs) error {
		pipe, done := StartRecordJSONLWriter(w, 64)
		if args.Sort {
			list := drainRecords(args.In)
			common.SortRecords(list)
			for _, r := range list {
				pipe <- r
			}
		} else {
			for r := range args.In {
				pipe <- r
			}
		}
		close(pipe)
		return <-done
	})

	// TEXT/TSV (+ optional pretty blocks)
	registerRecord(output.FormatText, func(w io.Writer, args recordArgs) error {
		var render output.RowRenderer
		if args.Pretty {
			render = func(observed string, row output.Row) string {
				return pretty.RenderPairWithOptions(row.Barcode, observed, args.Opt)
			}
		}
		if args.Sort {
			list := drainRecords(args.In)
			common.SortRecords(list)
			return output.WriteTextWithRenderer(w, list, args.Header, render)
		}
		return output.StreamTextWithRenderer(w, args.In, args.Header, render)
	})
}

// StartRecordWriter spins up a writer goroutine for resolved records.
func StartRecordWriter(out io.Writer, format string, sort, header, prettyMode bool, bufSize int) (chan<- output.Record, <-chan error) {
	return StartRecordWriterWithPrettyOptions(out, format, sort, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartRecordWriterWithPrettyOptions allows customizing the pretty renderer.
func StartRecordWriterWithPrettyOptions(out io.Writer, format string, sort, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- output.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := writeRecords(format, out, recordArgs{
			Sort:   sort,
			Header: header,
			Pretty: prettyMode,
			Opt:    popt,
			In:     in,
		})
		if err != nil {
			// keep producers unblocked
			for range in {
			}
		}
		errCh <- err
	}()
	return in, errCh
}
