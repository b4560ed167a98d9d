package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output.SetGlobalPrinter(output.NewPrinter(output.WithWriter(&buf), output.PlainText()))
	t.Cleanup(func() { output.SetGlobalPrinter(prev) })
	return &buf
}

func noop(_ []string, _ *session.Manager, _ *config.Config) error { return nil }

func TestRegisterIsCaseInsensitiveAndLastWins(t *testing.T) {
	r := NewRegistry()
	first := 0
	second := 0

	r.Register("EC2", func(_ []string, _ *session.Manager, _ *config.Config) error {
		first++
		return nil
	}, "one")
	r.Register("ec2", func(_ []string, _ *session.Manager, _ *config.Config) error {
		second++
		return nil
	}, "two")

	require.NoError(t, r.Dispatch("Ec2", nil, nil, nil))
	assert.Zero(t, first)
	assert.Equal(t, 1, second)

	entry, ok := r.Get("ec2")
	require.True(t, ok)
	assert.Equal(t, "two", entry.Help)
}

func TestDispatchUnknownCommandPrintsHint(t *testing.T) {
	buf := captureOutput(t)
	r := NewRegistry()

	require.NoError(t, r.Dispatch("nope", nil, nil, nil))
	assert.Contains(t, buf.String(), "Unknown command: nope")
	assert.Contains(t, buf.String(), "help")
}

func TestDispatchSwallowsHandlerErrors(t *testing.T) {
	buf := captureOutput(t)
	r := NewRegistry()
	r.Register("boom", func(_ []string, _ *session.Manager, _ *config.Config) error {
		return errors.New("provider unavailable")
	}, "")
	r.Register("ok", noop, "")

	require.NoError(t, r.Dispatch("boom", nil, nil, nil))
	assert.Contains(t, buf.String(), "Error: provider unavailable")

	// The registry stays usable after a failed dispatch.
	require.NoError(t, r.Dispatch("ok", nil, nil, nil))
}

func TestDispatchRecoversPanics(t *testing.T) {
	buf := captureOutput(t)
	r := NewRegistry()
	r.Register("panic", func(_ []string, _ *session.Manager, _ *config.Config) error {
		panic("handler exploded")
	}, "")

	require.NoError(t, r.Dispatch("panic", nil, nil, nil))
	assert.Contains(t, buf.String(), "handler exploded")
}

func TestDispatchPropagatesExitSentinel(t *testing.T) {
	r := NewRegistry()
	r.Register("exit", func(_ []string, _ *session.Manager, _ *config.Config) error {
		return ErrExit
	}, "")

	assert.ErrorIs(t, r.Dispatch("exit", nil, nil, nil), ErrExit)
}

func TestEntriesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", noop, "")
	r.Register("alpha", noop, "")
	r.Register("mid", noop, "")

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "zeta", entries[2].Name)
}

func TestDispatchSub(t *testing.T) {
	buf := captureOutput(t)
	called := false
	subs := Subcommands{
		"list-things": func(args []string, _ *session.Manager, _ *config.Config) error {
			called = true
			assert.Equal(t, []string{"extra"}, args)
			return nil
		},
	}

	require.NoError(t, DispatchSub("svc", subs, nil, nil, nil))
	assert.Contains(t, buf.String(), "Usage: svc <subcommand>")
	assert.Contains(t, buf.String(), "list-things")

	buf.Reset()
	require.NoError(t, DispatchSub("svc", subs, []string{"bogus"}, nil, nil))
	assert.Contains(t, buf.String(), "Unknown subcommand: svc bogus")

	require.NoError(t, DispatchSub("svc", subs, []string{"LIST-THINGS", "extra"}, nil, nil))
	assert.True(t, called)
}

func TestRegisterSubsRecordsSortedNames(t *testing.T) {
	r := NewRegistry()
	r.Register("svc", noop, "")
	r.RegisterSubs("SVC", Subcommands{
		"list-things":    nil,
		"describe-thing": nil,
	})

	assert.Equal(t, []string{"describe-thing", "list-things"}, r.SubNames("svc"))
	assert.Empty(t, r.SubNames("other"))
}
