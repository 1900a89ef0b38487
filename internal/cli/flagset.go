package cli

import (
	"flag"
	"fmt"
	"io"

	"bcmodel/internal/version"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { Usage(fs.Output(), name, fs) }
	return fs
}

// Usage prints the grouped help screen. Defaults are read from fs.
func Usage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – barcode error-correction model\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage:\n  %s [options] groups.tsv [more.tsv ...]\n", name)
	fmt.Fprintf(out, "  zcat groups.tsv.gz | %s -o jsonl -\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -g, --groups file           Group TSV (observed  true1[,true2...]  [count]); repeatable, '-' for STDIN")

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "      --pretty                Alignment block per candidate (text) [%s]\n", def("pretty"))
	fmt.Fprintf(out, "      --sort                  Sort groups by observed barcode [%s]\n", def("sort"))
	fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

	fmt.Fprintln(out, "\nExit status: 0 ok, 2 usage/input error, 3 I/O error, 4 invalid barcode mapping, 130 interrupted")
}
