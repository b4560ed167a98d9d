package general

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output.SetGlobalPrinter(output.NewPrinter(output.WithWriter(&buf), output.PlainText()))
	t.Cleanup(func() { output.SetGlobalPrinter(prev) })
	return &buf
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestExitReturnsSentinel(t *testing.T) {
	assert.ErrorIs(t, exit(nil, nil, nil), commands.ErrExit)
}

func TestSetOutputValidatesFormat(t *testing.T) {
	capture(t)
	cfg := testConfig(t)
	sess := session.New(cfg)

	require.NoError(t, setOutput([]string{"json"}, sess, cfg))
	assert.Equal(t, "json", cfg.OutputFormat)

	err := setOutput([]string{"xml"}, sess, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestSetRegionSwitchesSession(t *testing.T) {
	capture(t)
	cfg := testConfig(t)
	sess := session.New(cfg)

	require.NoError(t, setRegion([]string{"eu-west-1"}, sess, cfg))
	assert.Equal(t, "eu-west-1", cfg.Region)

	assert.Error(t, setRegion(nil, sess, cfg))
}

func TestUseProfileRequiresName(t *testing.T) {
	capture(t)
	cfg := testConfig(t)
	sess := session.New(cfg)

	assert.Error(t, useProfile(nil, sess, cfg))
	require.NoError(t, useProfile([]string{"staging"}, sess, cfg))
	assert.Equal(t, "staging", cfg.Profile)
}

func TestServicesListsRegisteredCommands(t *testing.T) {
	buf := capture(t)
	cfg := testConfig(t)

	require.NoError(t, services(nil, session.New(cfg), cfg))
	out := buf.String()
	assert.Contains(t, out, "exit")
	assert.Contains(t, out, "use-profile")
}
