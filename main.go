package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/atomicstack/search-menu/internal/cli"
	"github.com/atomicstack/search-menu/internal/config"
	"github.com/atomicstack/search-menu/internal/logging/events"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.Options{OnStart: traceStartup})
	stop()
	os.Exit(code)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload describes the process for the app.start trace entry.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    probeTerminals(os.Stdin, os.Stdout, os.Stderr),
	}
	record := func(key string, value string, err error) {
		if err != nil {
			payload[key+"Error"] = err.Error()
			return
		}
		payload[key] = value
	}
	exe, err := os.Executable()
	record("executable", exe, err)
	cwd, err := os.Getwd()
	record("cwd", cwd, err)
	return payload
}

type terminalProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// probeTerminals reports which files are terminals and their sizes.
func probeTerminals(files ...*os.File) []terminalProbe {
	probes := make([]terminalProbe, 0, len(files))
	for _, f := range files {
		probe := terminalProbe{Name: filepath.Base(f.Name())}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			probe.Terminal = true
			if w, h, err := term.GetSize(fd); err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = w, h
			}
		}
		probes = append(probes, probe)
	}
	return probes
}
