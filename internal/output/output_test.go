// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcmodel-core/edit"
	"bcmodel/pkg/api"
)

func sampleRecord() Record {
	return Record{
		SourceFile: "g.tsv",
		Line:       2,
		Observed:   "AAAA",
		Count:      5,
		Rows: []Row{
			{Barcode: "AAAT", Edit: edit.Substitution, Likelihood: 0.6, Probability: 0.375},
			{Barcode: "AAAA", Edit: edit.Match, Likelihood: 1, Probability: 0.625},
		},
	}
}

func TestTSVHeaderStable(t *testing.T) {
	const want = "observed\tcount\trank\tcandidate\tedit\tlikelihood\tprobability"
	assert.Equal(t, want, TSVHeader)
}

func TestFormatsStable(t *testing.T) {
	assert.Equal(t, "text", FormatText)
	assert.Equal(t, "json", FormatJSON)
	assert.Equal(t, "jsonl", FormatJSONL)
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteTextWithRenderer(&b, []Record{sampleRecord()}, true, nil))
	want := TSVHeader + "\n" +
		"AAAA\t5\t1\tAAAT\tsubstitution\t0.6\t0.375\n" +
		"AAAA\t5\t2\tAAAA\tmatch\t1\t0.625\n"
	assert.Equal(t, want, b.String())
}

func TestStreamTextWithRenderer(t *testing.T) {
	in := make(chan Record, 1)
	in <- sampleRecord()
	close(in)

	var b bytes.Buffer
	render := func(obs string, row Row) string { return "# " + row.Barcode + ">" + obs + "\n" }
	require.NoError(t, StreamTextWithRenderer(&b, in, false, render))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, []string{
		"AAAA\t5\t1\tAAAT\tsubstitution\t0.6\t0.375",
		"# AAAT>AAAA",
		"AAAA\t5\t2\tAAAA\tmatch\t1\t0.625",
		"# AAAA>AAAA",
	}, lines)
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, []Record{sampleRecord()}))

	var got []api.ResolutionV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "AAAA", got[0].Observed)
	assert.Equal(t, 5, got[0].Count)
	assert.Equal(t, []api.AssignmentV1{
		{Barcode: "AAAT", Edit: "substitution", Likelihood: 0.6, Probability: 0.375},
		{Barcode: "AAAA", Edit: "match", Likelihood: 1, Probability: 0.625},
	}, got[0].Candidates)
	assert.Contains(t, b.String(), "\n  {", "array should be indented")
}

func TestFormatFloat(t *testing.T) {
	sub, match := 0.6, 1.0
	norm := sub + match
	assert.NotEqual(t, 0.375, sub/norm, "division noise expected")
	assert.Equal(t, "0.375", FormatFloat(sub/norm))
	assert.Equal(t, "0.625", FormatFloat(match/norm))
	assert.Equal(t, "1", FormatFloat(1))
	assert.Equal(t, "0.6", FormatFloat(0.6))
	assert.Equal(t, "0.333333333333", FormatFloat(0.6/1.8))
}
