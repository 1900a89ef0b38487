// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"bcmodel/internal/appcore"
	"bcmodel/internal/cli"
	"bcmodel/internal/cmdutil"
	"bcmodel/internal/output"
	"bcmodel/internal/version"
	"bcmodel/internal/visitors"
	"bcmodel/internal/writers"
)

const name = "bcmodel"

// flushUsage prints usage to stdout and returns code (or 3 if stdout fails).
func flushUsage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitIO
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return flushUsage(fs, outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return flushUsage(fs, outw, stderr, appcore.ExitOK)
		}
		cmdutil.Errorf(stderr, "%v", err)
		return flushUsage(fs, outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return appcore.ExitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return appcore.ExitIO
		}
		return appcore.ExitOK
	}

	if opts.Pretty && opts.Output != output.FormatText {
		cmdutil.Warnf(stderr, opts.Quiet, "--pretty only applies to text output; ignoring")
		opts.Pretty = false
	}

	coreOpts := appcore.Options{
		GroupFiles: opts.GroupFiles,
		Threads:    opts.Threads,
		Quiet:      opts.Quiet,
	}
	writer := appcore.NewRecordWriterFactory(opts.Output, opts.Sort, opts.Header, opts.Pretty)
	return appcore.Run[output.Record](parent, stdout, stderr, coreOpts, visitors.Annotate{}.Visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
