package aicmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
)

func captureWithInput(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output.SetGlobalPrinter(output.NewPrinter(
		output.WithWriter(&buf),
		output.WithReader(strings.NewReader(input)),
		output.PlainText(),
	))
	t.Cleanup(func() { output.SetGlobalPrinter(prev) })
	return &buf
}

func TestHandleRequiresArguments(t *testing.T) {
	err := handle(nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage:")
}

func TestOfferCommandsRunsApprovedSuggestions(t *testing.T) {
	captureWithInput(t, "y\n")

	ran := 0
	commands.Register("probe-approved", func(args []string, _ *session.Manager, _ *config.Config) error {
		ran++
		assert.Equal(t, []string{"arg1"}, args)
		return nil
	}, "test probe")

	cfg := &config.Config{OutputFormat: "table"}
	require.NoError(t, offerCommands([]string{"probe-approved arg1"}, session.New(cfg), cfg))
	assert.Equal(t, 1, ran)
}

func TestOfferCommandsSkipsDeclinedSuggestions(t *testing.T) {
	captureWithInput(t, "n\ny\n")

	var ran []string
	for _, name := range []string{"probe-first", "probe-second"} {
		name := name
		commands.Register(name, func(_ []string, _ *session.Manager, _ *config.Config) error {
			ran = append(ran, name)
			return nil
		}, "test probe")
	}

	cfg := &config.Config{OutputFormat: "table"}
	require.NoError(t, offerCommands([]string{"probe-first", "probe-second"}, session.New(cfg), cfg))
	assert.Equal(t, []string{"probe-second"}, ran)
}

func TestOfferCommandsStopsQuietlyAtEOF(t *testing.T) {
	captureWithInput(t, "")

	cfg := &config.Config{OutputFormat: "table"}
	require.NoError(t, offerCommands([]string{"anything"}, session.New(cfg), cfg))
}
