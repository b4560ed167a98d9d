package tabular

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToString(t *Table) string {
	var buf bytes.Buffer
	t.Render(&buf)
	return ansi.Strip(buf.String())
}

func TestRenderEmptyTable(t *testing.T) {
	out := renderToString(New(nil))
	assert.Contains(t, out, "No results")
}

func TestRenderWithExplicitColumns(t *testing.T) {
	table := New([]any{
		Record{"InstanceId": "i-0abc123", "State": map[string]any{"Name": "running"}},
	}).WithColumns(
		Column{Path: "InstanceId", Header: "ID"},
		Column{Path: "State.Name", Header: "State"},
	).WithTitle("EC2 Instances")

	out := renderToString(table)
	assert.Contains(t, out, "EC2 Instances")
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "i-0abc123")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "1 item(s)")
}

func TestRenderInfersColumnsAndSkipsResponseMetadata(t *testing.T) {
	table := New([]any{
		Record{"Name": "thing", "ResponseMetadata": map[string]any{"RequestId": "x"}},
	})
	out := renderToString(table)
	assert.Contains(t, out, "Name")
	assert.NotContains(t, out, "RequestId")
}

func TestRenderScalarItems(t *testing.T) {
	out := renderToString(New(FromValues([]string{"bucket-a", "bucket-b"})))
	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "bucket-a")
	assert.Contains(t, out, "2 item(s)")
}

func TestRenderTruncatesLongCellsForDisplayOnly(t *testing.T) {
	long := strings.Repeat("x", 200)
	table := New([]any{Record{"Blob": long}})

	out := renderToString(table)
	assert.Contains(t, out, strings.Repeat("x", maxCellWidth)+"...")
	assert.NotContains(t, out, long)

	// The raw data and JSON stay untruncated.
	assert.Equal(t, long, table.Data()[0].(Record)["Blob"])
	assert.Contains(t, table.JSON(), long)
}

func TestTruncateClipsOnRuneBoundaries(t *testing.T) {
	wide := strings.Repeat("名", 60) // width 2 per rune, 3 bytes each

	got := truncate(wide, maxCellWidth)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, ansi.StringWidth(got), maxCellWidth+3)

	// Anything at or under the limit passes through untouched.
	assert.Equal(t, "héllo", truncate("héllo", maxCellWidth))
}

func TestTextOutputIsPlainAndUntruncated(t *testing.T) {
	long := strings.Repeat("x", 200)
	table := NewRecords([]Record{
		{"Name": "web-1", "Note": long},
	}).WithColumns(Column{Path: "Name"}, Column{Path: "Note"})

	var buf bytes.Buffer
	table.Text(&buf)

	assert.Equal(t, "web-1\t"+long+"\n", buf.String())
}

func TestStyleCellPriorities(t *testing.T) {
	// Styles collapse to plain text in a non-tty test run; what matters here
	// is that every shape renders its value rather than erroring or mangling.
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"running", "running"},
		{"i-0abc123", "i-0abc123"},
		{"arn:aws:iam::123456789012:role/admin", "arn:aws:iam::123456789012:role/admin"},
		{"10.0.1.25", "10.0.1.25"},
		{"2024-05-01T10:00:00Z", "2024-05-01T10:00:00Z"},
		{true, "true"},
		{float64(42), "42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ansi.Strip(styleCell(tt.in)))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	when := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	table := New([]any{
		Record{"Name": "web", "LaunchTime": when, "Port": float64(443)},
	})

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(table.JSON()), &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "web", decoded[0]["Name"])
	assert.Equal(t, "2024-05-01T10:30:00Z", decoded[0]["LaunchTime"])
	assert.Equal(t, float64(443), decoded[0]["Port"])
}

func TestJSONFailsClosedOnUnencodableValues(t *testing.T) {
	table := New([]any{
		Record{"Name": "web", "Weird": make(chan int)},
	})

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(table.JSON()), &decoded))
	assert.Equal(t, "web", decoded[0]["Name"])
	// Channels can't be serialized; the cell degrades to a string.
	assert.IsType(t, "", decoded[0]["Weird"])
}

func TestFromAny(t *testing.T) {
	type instance struct {
		InstanceId string
		LaunchTime time.Time
	}
	records, err := FromAny([]instance{
		{InstanceId: "i-1", LaunchTime: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "i-1", records[0]["InstanceId"])
	assert.Equal(t, "2024-01-02T00:00:00Z", records[0]["LaunchTime"])

	single, err := FromAny(instance{InstanceId: "i-2"})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "i-2", single[0]["InstanceId"])
}
