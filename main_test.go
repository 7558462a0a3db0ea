package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/search-menu/internal/app"
	"github.com/atomicstack/search-menu/internal/config"
	"github.com/atomicstack/search-menu/internal/menu"
)

func TestProbeTerminalsNamesStandardDescriptors(t *testing.T) {
	probes := probeTerminals(os.Stdin, os.Stdout, os.Stderr)
	require.Len(t, probes, 3)
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		assert.Equal(t, name, probes[i].Name, "probe %d", i)
	}
}

func TestProbeTerminalsRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "probe")
	require.NoError(t, err)
	defer f.Close()
	probes := probeTerminals(f)
	require.Len(t, probes, 1)
	assert.False(t, probes[0].Terminal)
	assert.Zero(t, probes[0].Width)
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:        80,
			Height:       24,
			ShowFooter:   true,
			Verbose:      true,
			DBPath:       "search.db",
			PollInterval: 2 * time.Second,
			Types:        menu.DefaultTypes(),
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"db":      "search.db",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--db", "search.db"},
	}

	payload := startupTracePayload(cfg)

	flags, ok := payload["flags"].(map[string]interface{})
	require.True(t, ok, "expected flags map in payload")
	assert.Equal(t, "search.db", flags["db"])
	assert.Equal(t, "80", flags["width"])
	assert.Equal(t, "24", flags["height"])
	assert.Equal(t, "true", flags["footer"])
	assert.Equal(t, true, flags["trace"])
	assert.Equal(t, "true", flags["verbose"])
	assert.Equal(t, "trace.log", flags["logFile"])
	assert.Equal(t, cfg.Args, payload["argv"])
	assert.NotEmpty(t, payload["cwd"])

	_, ok = payload["tty"].([]terminalProbe)
	assert.True(t, ok, "expected tty details in payload")
	cfgValue, ok := payload["config"].(config.Config)
	require.True(t, ok, "expected config in payload")
	assert.Equal(t, cfg.App, cfgValue.App)
}
