package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedRecords(names ...string) []Record {
	records := make([]Record, len(names))
	for i, n := range names {
		records[i] = Record{"Name": n}
	}
	return records
}

func names(t *Table) []string {
	out := make([]string, 0, t.Len())
	for _, item := range t.Data() {
		out = append(out, item.(Record)["Name"].(string))
	}
	return out
}

func TestWhereWildcardModes(t *testing.T) {
	table := NewRecords(namedRecords("web-1", "web-2", "db-1"))

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"prefix", "web*", []string{"web-1", "web-2"}},
		{"suffix", "*1", []string{"web-1", "db-1"}},
		{"contains", "*eb*", []string{"web-1", "web-2"}},
		{"exact", "web-1", []string{"web-1"}},
		{"exact miss", "web", nil},
		{"case insensitive", "WEB-1", []string{"web-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Where("Name", tt.pattern)
			if tt.want == nil {
				assert.Zero(t, got.Len())
			} else {
				assert.Equal(t, tt.want, names(got))
			}
		})
	}
}

func TestWhereTagFallback(t *testing.T) {
	table := New([]any{
		Record{
			"InstanceId": "i-0abc123",
			"Tags": []any{
				map[string]any{"Key": "Env", "Value": "staging"},
				map[string]any{"Key": "Name", "Value": "prod-box"},
			},
		},
	})

	assert.Equal(t, 1, table.Where("Name", "prod-box").Len())
	assert.Equal(t, 1, table.Where("Name", "prod*").Len())
	assert.Equal(t, 0, table.Where("Name", "staging").Len())
}

func TestWhereDottedPath(t *testing.T) {
	table := New([]any{
		Record{"InstanceId": "i-1", "State": map[string]any{"Name": "running"}},
		Record{"InstanceId": "i-2", "State": map[string]any{"Name": "stopped"}},
	})

	got := table.Where("State.Name", "running")
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "i-1", got.Data()[0].(Record)["InstanceId"])
}

func TestWhereMissingFieldDropsRecord(t *testing.T) {
	table := New([]any{
		Record{"Name": "has-name"},
		Record{"Other": "no-name"},
	})
	assert.Equal(t, []string{"has-name"}, names(table.Where("Name", "*a*")))
}

func TestWhereCollectionValueUsesContains(t *testing.T) {
	table := New([]any{
		Record{"Name": "a", "SecurityGroups": []any{
			map[string]any{"GroupId": "sg-0aa", "GroupName": "web-sg"},
		}},
		Record{"Name": "b", "SecurityGroups": []any{
			map[string]any{"GroupId": "sg-0bb", "GroupName": "db-sg"},
		}},
	})
	// Even an exact-looking pattern matches by containment on collections.
	assert.Equal(t, []string{"a"}, names(table.Where("SecurityGroups", "web")))
}

func TestWhereNarrowsSequentially(t *testing.T) {
	table := New([]any{
		Record{"Name": "web-1", "State": map[string]any{"Name": "running"}},
		Record{"Name": "web-2", "State": map[string]any{"Name": "stopped"}},
		Record{"Name": "db-1", "State": map[string]any{"Name": "running"}},
	})
	got := table.Where("Name", "web*").Where("State.Name", "running")
	assert.Equal(t, []string{"web-1"}, names(got))
}

func TestFilterIdempotent(t *testing.T) {
	table := NewRecords(namedRecords("web-1", "web-2", "db-1"))
	once := table.Where("Name", "web*")
	twice := once.Where("Name", "web*")
	assert.Equal(t, names(once), names(twice))
}

func TestTransformsDoNotMutateSource(t *testing.T) {
	table := NewRecords(namedRecords("b", "a", "c"))
	before := names(table)

	table.Where("Name", "a")
	table.Sort("Name")
	table.Find("b")
	table.Select("Name:N")
	table.Slice(0, 1)

	assert.Equal(t, before, names(table))
}

func TestSortLexicographic(t *testing.T) {
	table := New([]any{
		Record{"v": "2"},
		Record{"v": "10"},
		Record{"v": "1"},
	})
	got := table.Sort("v")
	vals := make([]string, 0, got.Len())
	for _, item := range got.Data() {
		vals = append(vals, item.(Record)["v"].(string))
	}
	// String comparison, by contract: "10" sorts before "2".
	assert.Equal(t, []string{"1", "10", "2"}, vals)
}

func TestSortStableAndDesc(t *testing.T) {
	table := New([]any{
		Record{"Name": "first", "Group": "x"},
		Record{"Name": "second", "Group": "x"},
		Record{"Name": "third", "Group": "a"},
	})

	asc := table.Sort("Group")
	assert.Equal(t, []string{"third", "first", "second"}, names(asc))

	desc := table.SortDesc("Group")
	assert.Equal(t, "first", desc.Data()[0].(Record)["Name"])
}

func TestSortUnresolvableSortsAsEmpty(t *testing.T) {
	table := New([]any{
		Record{"Name": "z", "Rank": "5"},
		Record{"Name": "missing"},
	})
	got := table.Sort("Rank")
	assert.Equal(t, []string{"missing", "z"}, names(got))
}

func TestFindIsSubstringNotPrefix(t *testing.T) {
	table := New([]any{Record{"Region": "us-east-1"}})

	assert.Equal(t, 1, table.Find("east").Len())
	assert.Equal(t, 0, table.Find("east-2").Len())
}

func TestFindMatchesNestedValuesAndPaths(t *testing.T) {
	table := New([]any{
		Record{"InstanceId": "i-1", "Placement": map[string]any{"AvailabilityZone": "us-east-1a"}},
		Record{"InstanceId": "i-2", "Placement": map[string]any{"AvailabilityZone": "eu-west-1b"}},
	})

	got := table.Find("east")
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "Search: 'east'", got.Title())

	// Keys participate too: "Placement" appears in every record's paths.
	assert.Equal(t, 2, table.Find("placement").Len())
}

func TestFindTreatsRecordAndRawMapAlike(t *testing.T) {
	items := []any{
		Record{"Name": "web-1"},
		map[string]any{"Name": "web-2"},
		[]any{"web-3"},
		Record{"Name": "db-1"},
	}

	got := New(items).Find("web")
	assert.Equal(t, 3, got.Len())
}

func TestFindOnScalarItems(t *testing.T) {
	table := New(FromValues([]string{"my-bucket", "other-bucket", "logs"}))
	assert.Equal(t, 2, table.Find("bucket").Len())
}

func TestSelectChangesProjectionNotData(t *testing.T) {
	table := New([]any{Record{"Name": "web-1", "State": "running", "Type": "t3.micro"}})
	got := table.Select("Name", "State.Name:State")

	require.Len(t, got.Columns(), 2)
	assert.Equal(t, Column{Path: "Name", Header: "Name"}, got.Columns()[0])
	assert.Equal(t, Column{Path: "State.Name", Header: "State"}, got.Columns()[1])

	rec := got.Data()[0].(Record)
	assert.Len(t, rec, 3, "select must not drop underlying fields")
}

func TestSliceAndIndexPreserveMetadata(t *testing.T) {
	table := NewRecords(namedRecords("a", "b", "c")).
		WithTitle("Things").
		WithColumns(Column{Path: "Name", Header: "Name"})

	part := table.Slice(1, 5)
	assert.Equal(t, 2, part.Len())
	assert.Equal(t, "Things", part.Title())
	require.Len(t, part.Columns(), 1)

	item, err := table.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", item.(Record)["Name"])

	_, err = table.At(99)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	rec := Record{
		"InstanceId": "i-0abc",
		"State":      map[string]any{"Name": "running", "Code": float64(16)},
		"Tags": []any{
			map[string]any{"Key": "Name", "Value": "api-server"},
		},
	}

	assert.Equal(t, "i-0abc", Resolve(rec, "InstanceId"))
	assert.Equal(t, "running", Resolve(rec, "State.Name"))
	assert.Equal(t, "api-server", Resolve(rec, "Tags.Name"))
	assert.Nil(t, Resolve(rec, "Tags.Env"))
	assert.Nil(t, Resolve(rec, "State.Name.Deeper"))
	assert.Nil(t, Resolve(rec, "Missing"))
	assert.Equal(t, "scalar", Resolve("scalar", "anything"))
}

func TestFlatten(t *testing.T) {
	flat := Flatten(map[string]any{
		"Name": "web",
		"Nics": []any{
			map[string]any{"Ip": "10.0.0.5"},
		},
	})

	byPath := map[string]string{}
	for _, pv := range flat {
		byPath[pv.Path] = pv.Value
	}
	assert.Equal(t, "web", byPath["Name"])
	assert.Equal(t, "10.0.0.5", byPath["Nics[0].Ip"])
}
