// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"bcmodel/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	GroupFiles []string

	// Performance
	Threads int

	// Output
	Output string
	Pretty bool
	Sort   bool
	Header bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are treated as group files (globs expanded).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	var groups stringSlice
	fs.Var(&groups, "groups", "barcode group TSV file(s) (repeatable or '-') [*]")
	fs.Var(&groups, "g", "barcode group TSV file(s) (shorthand)")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "number of worker threads (shorthand)")

	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "output format (shorthand)")
	fs.BoolVar(&opt.Pretty, "pretty", false, "append an alignment block per candidate (text) [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort groups by observed barcode [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand)")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	opt.GroupFiles = groups

	exp, err := ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.GroupFiles = append(opt.GroupFiles, exp...)
	return opt, Validate(opt)
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	if len(o.GroupFiles) == 0 {
		return errors.New("at least one --groups file is required")
	}
	stdin := 0
	for _, f := range o.GroupFiles {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (stdin) may be given only once")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
