// core/group/loader.go
package group

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bcmodel-core/barcode"
)

// Group is one observed barcode with the true barcodes it may derive from.
type Group struct {
	Line       int // 1-based line in the source file
	Observed   string
	Candidates []string
	Count      int // observed-barcode frequency from the upstream counter (0 = unknown)
}

// parseLine parses "observed true1[,true2...] [count]".
func parseLine(line string) (Group, error) {
	f := strings.Fields(line)
	if len(f) < 2 || len(f) > 3 {
		return Group{}, fmt.Errorf("bad field count %d (want: observed candidates [count])", len(f))
	}
	obs, err := barcode.Validate(f[0])
	if err != nil {
		return Group{}, fmt.Errorf("observed: %w", err)
	}
	g := Group{Observed: obs}
	for k, raw := range strings.Split(f[1], ",") {
		if raw == "" {
			return Group{}, fmt.Errorf("empty candidate #%d", k+1)
		}
		c, err := barcode.Validate(raw)
		if err != nil {
			return Group{}, fmt.Errorf("candidate #%d: %w", k+1, err)
		}
		g.Candidates = append(g.Candidates, c)
	}
	if len(f) == 3 {
		n, err := strconv.Atoi(f[2])
		if err != nil || n < 0 {
			return Group{}, fmt.Errorf("bad count %q", f[2])
		}
		g.Count = n
	}
	return g, nil
}

// ScanCtx parses groups from r and calls emit for each one. name prefixes
// error messages. It returns promptly when ctx is done.
func ScanCtx(ctx context.Context, r io.Reader, name string, emit func(Group) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		g, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		g.Line = ln
		if err := emit(g); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Read parses every group from r.
func Read(r io.Reader, name string) ([]Group, error) {
	var list []Group
	err := ScanCtx(context.Background(), r, name, func(g Group) error {
		list = append(list, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Load reads every group from path ("-" = stdin, gzip detected).
func Load(path string) ([]Group, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc, path)
}
