package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcmodel-core/edit"
	"bcmodel/internal/output"
	"bcmodel/pkg/api"
)

func records() []output.Record {
	return []output.Record{
		{Observed: "TTTT", Rows: []output.Row{{Barcode: "TTTT", Edit: edit.Match, Likelihood: 1, Probability: 1}}},
		{Observed: "ACGT", Count: 3, Rows: []output.Row{
			{Barcode: "ACG", Edit: edit.Insertion, Likelihood: 0.3, Probability: 0.3 / 1.3},
			{Barcode: "ACGT", Edit: edit.Match, Likelihood: 1, Probability: 1 / 1.3},
		}},
	}
}

func run(t *testing.T, format string, sort, header, pretty bool) (string, error) {
	t.Helper()
	var b bytes.Buffer
	in, done := StartRecordWriter(&b, format, sort, header, pretty, 1)
	for _, r := range records() {
		in <- r
	}
	close(in)
	err := <-done
	return b.String(), err
}

func TestUnknownFormatError(t *testing.T) {
	_, err := run(t, "nope-format", false, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestTextWriter(t *testing.T) {
	out, err := run(t, output.FormatText, false, true, false)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, output.TSVHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "TTTT\t0\t1\tTTTT\tmatch\t1\t1"))
	assert.True(t, strings.HasPrefix(lines[2], "ACGT\t3\t1\tACG\tinsertion\t0.3\t"))
}

func TestTextWriterSortedPretty(t *testing.T) {
	out, err := run(t, output.FormatText, true, false, true)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], "ACGT\t3\t1\tACG\t"))
	assert.Equal(t, "# true ACG-", lines[1])
	assert.Equal(t, "#      |||", lines[2])
	assert.Equal(t, "# obs  ACGT", lines[3])
	assert.True(t, strings.HasPrefix(lines[11], "# obs  TTTT"))
}

func TestJSONWriterSorted(t *testing.T) {
	out, err := run(t, output.FormatJSON, true, false, false)
	require.NoError(t, err)
	var got []api.ResolutionV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "ACGT", got[0].Observed)
	assert.Equal(t, "insertion", got[0].Candidates[0].Edit)
	assert.Equal(t, "TTTT", got[1].Observed)
}

func TestJSONLWriter(t *testing.T) {
	out, err := run(t, output.FormatJSONL, false, false, false)
	require.NoError(t, err)
	sc := bufio.NewScanner(strings.NewReader(out))
	var obs []string
	for sc.Scan() {
		var v api.ResolutionV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v))
		obs = append(obs, v.Observed)
	}
	assert.Equal(t, []string{"TTTT", "ACGT"}, obs)

	out, err = run(t, output.FormatJSONL, true, false, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"observed":"ACGT"`), out)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
