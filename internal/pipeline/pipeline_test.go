// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcmodel-core/resolve"
)

func writeGroups(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func manyGroups(n int) string {
	var b strings.Builder
	obs := []string{"ACGT", "TTTT", "GGGA", "CCCC"}
	for i := 0; i < n; i++ {
		o := obs[i%len(obs)]
		fmt.Fprintf(&b, "%s\t%s,%sA,%s\t%d\n", o, o, o, o[:3]+"N", i)
	}
	return b.String()
}

func collect(t *testing.T, cfg Config, files ...string) ([]Resolution, error) {
	t.Helper()
	var out []Resolution
	err := ForEachResolution(context.Background(), cfg, files, func(r Resolution) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func TestForEachResolutionOrder(t *testing.T) {
	a := writeGroups(t, "a.tsv", manyGroups(50))
	b := writeGroups(t, "b.tsv", "ACGT\tACGT\n")

	got, err := collect(t, Config{Threads: 8}, a, b)
	require.NoError(t, err)
	require.Len(t, got, 51)
	for i, r := range got {
		require.Equal(t, i, r.Index, "out of order at %d:\n%s", i, spew.Sdump(r))
	}
	assert.Equal(t, a, got[0].SourceFile)
	assert.Equal(t, 1, got[0].Group.Line)
	assert.Equal(t, b, got[50].SourceFile)
	assert.Equal(t, []resolve.Assignment{{Barcode: "ACGT", Probability: 1.0}}, got[50].Assignments)
}

func TestForEachResolutionSerialEqualsParallel(t *testing.T) {
	fn := writeGroups(t, "g.tsv", manyGroups(200))
	serial, err := collect(t, Config{Threads: 1}, fn)
	require.NoError(t, err)
	parallel, err := collect(t, Config{Threads: 6}, fn)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestForEachResolutionProbabilities(t *testing.T) {
	fn := writeGroups(t, "g.tsv", "AAAA\tAAAA,AAAT\t7\n")
	got, err := collect(t, Config{}, fn)
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, 7, r.Group.Count)
	require.Len(t, r.Assignments, 2)
	assert.Equal(t, "AAAT", r.Assignments[0].Barcode)
	assert.InDelta(t, 0.375, r.Assignments[0].Probability, 1e-9)
	assert.Equal(t, "AAAA", r.Assignments[1].Barcode)
	assert.InDelta(t, 0.625, r.Assignments[1].Probability, 1e-9)
}

func TestForEachResolutionMappingErrorStops(t *testing.T) {
	fn := writeGroups(t, "g.tsv", "ACGT\tACGT,ACGA\nACGT\tACGT,TGCA\nACGT\tACGT,ACGC\n")
	got, err := collect(t, Config{Threads: 1}, fn)
	require.Error(t, err)
	assert.True(t, resolve.IsMappingError(err), "got %v", err)
	assert.Contains(t, err.Error(), fn+":2:")
	assert.Contains(t, err.Error(), "reference=TGCA observed=ACGT")
	assert.LessOrEqual(t, len(got), 1, "nothing after the failing group may be visited")
}

func TestForEachResolutionLoaderError(t *testing.T) {
	fn := writeGroups(t, "g.tsv", "ACGT\tACGT\nACXT\tACGT\n")
	_, err := collect(t, Config{Threads: 2}, fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2: observed: invalid base")

	_, err = collect(t, Config{}, filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}

func TestForEachResolutionVisitError(t *testing.T) {
	fn := writeGroups(t, "g.tsv", manyGroups(20))
	boom := errors.New("boom")
	n := 0
	err := ForEachResolution(context.Background(), Config{Threads: 4}, []string{fn}, func(Resolution) error {
		n++
		if n == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, n)
}

func TestForEachResolutionCustomResolver(t *testing.T) {
	fn := writeGroups(t, "g.tsv", "ACGT\tACGT,ACGA\n")
	sentinel := errors.New("resolver down")
	_, err := collect(t, Config{Resolve: func(string, []string) ([]resolve.Assignment, error) {
		return nil, sentinel
	}}, fn)
	assert.ErrorIs(t, err, sentinel)
}

func TestForEachResolutionCancelled(t *testing.T) {
	fn := writeGroups(t, "g.tsv", manyGroups(500))
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := ForEachResolution(ctx, Config{Threads: 2}, []string{fn}, func(Resolution) error {
		n++
		if n == 5 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, n, 500)
}
