// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"bcmodel-core/resolve"
	"bcmodel/internal/cmdutil"
	"bcmodel/internal/pipeline"
	"bcmodel/internal/writers"
)

// Exit codes shared by every entry point.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitMapping   = 4
	ExitCancelled = 130
)

type Options struct {
	GroupFiles []string
	Threads    int
	Quiet      bool
}

type VisitorFunc[T any] func(pipeline.Resolution) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run resolves every group in o.GroupFiles, streams visitor output to the
// writer and maps the outcome to an exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr},
		o.GroupFiles,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return ExitIO
	}

	if perr != nil {
		return ExitCode(stderr, perr)
	}
	if total == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no barcode groups found in input")
	}
	return ExitOK
}

// ExitCode prints a diagnostic for err and returns the matching exit code.
func ExitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case resolve.IsMappingError(err), errors.Is(err, resolve.ErrZeroNormalizer):
		cmdutil.Errorf(stderr, "%v", err)
		fmt.Fprintln(stderr, "this indicates a bug in upstream barcode grouping; please report it")
		return ExitMapping
	case writers.IsBrokenPipe(err):
		return ExitOK
	default:
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}
}
