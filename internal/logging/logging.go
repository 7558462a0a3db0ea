// Package logging writes JSON lines to a single log file. Errors are always
// written; trace entries only when tracing is enabled.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const defaultLogFile = "search-menu.log"

var sink = struct {
	sync.Mutex
	path  string
	trace bool
}{path: defaultLogFile}

type entry struct {
	Time    time.Time   `json:"time"`
	Level   string      `json:"level"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Error appends err to the log.
func Error(err error) {
	if err == nil {
		return
	}
	write(entry{Level: "error", Event: "error", Payload: map[string]string{"error": err.Error()}})
}

// Trace appends a structured entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	write(entry{Level: "trace", Event: event, Payload: payload})
}

func write(e entry) {
	e.Time = time.Now().UTC()
	sink.Lock()
	defer sink.Unlock()
	f, err := os.OpenFile(sink.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(e); err != nil {
		fmt.Fprintf(os.Stderr, "log encoding failed: %v\n", err)
	}
}

// SetTraceEnabled toggles trace entries.
func SetTraceEnabled(enabled bool) {
	sink.Lock()
	sink.trace = enabled
	sink.Unlock()
}

func TraceEnabled() bool {
	sink.Lock()
	defer sink.Unlock()
	return sink.trace
}

// Path returns the current log destination.
func Path() string {
	sink.Lock()
	defer sink.Unlock()
	return sink.path
}

// Configure sets the log destination, creating its directory. An empty path
// or an uncreatable directory falls back to the default file.
func Configure(path string) {
	path = strings.TrimSpace(path)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = ""
		}
	}
	if path == "" {
		path = defaultLogFile
	}
	sink.Lock()
	sink.path = path
	sink.Unlock()
}
