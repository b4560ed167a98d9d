package commands

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awshell/internal/config"
	"awshell/internal/session"
	"awshell/pkg/tabular"
)

func sampleTable() *tabular.Table {
	return tabular.NewRecords([]tabular.Record{
		{"Name": "alpha", "State": "running"},
		{"Name": "beta", "State": "stopped"},
	}).WithTitle("Sample")
}

func TestEmitRendersTableByDefault(t *testing.T) {
	buf := captureOutput(t)

	Emit(sampleTable(), &config.Config{OutputFormat: "table"})

	out := buf.String()
	assert.Contains(t, out, "Sample")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "2 item(s)")
}

func TestEmitJSONFormat(t *testing.T) {
	buf := captureOutput(t)

	Emit(sampleTable(), &config.Config{OutputFormat: "json"})

	out := buf.String()
	assert.Contains(t, out, `"Name": "alpha"`)
	assert.NotContains(t, out, "item(s)")
}

func TestFetchingAdapterEmitsOrPropagates(t *testing.T) {
	buf := captureOutput(t)
	cfg := &config.Config{OutputFormat: "table"}

	ok := Fetching(func(context.Context, *session.Manager) (*tabular.Table, error) {
		return sampleTable(), nil
	})
	require.NoError(t, ok(nil, nil, cfg))
	assert.Contains(t, buf.String(), "alpha")

	failing := Fetching(func(context.Context, *session.Manager) (*tabular.Table, error) {
		return nil, fmt.Errorf("throttled")
	})
	assert.EqualError(t, failing(nil, nil, cfg), "throttled")
}
