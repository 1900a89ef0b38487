package appcore

import (
	"io"

	"bcmodel/internal/output"
	"bcmodel/internal/writers"
)

// RecordWriterFactory starts the record writer for the chosen format.
type RecordWriterFactory struct {
	Format string
	Sort   bool
	Header bool
	Pretty bool
}

func NewRecordWriterFactory(format string, sort, header, pretty bool) RecordWriterFactory {
	return RecordWriterFactory{Format: format, Sort: sort, Header: header, Pretty: pretty}
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Record, <-chan error) {
	return writers.StartRecordWriter(out, w.Format, w.Sort, w.Header, w.Pretty, bufSize)
}
