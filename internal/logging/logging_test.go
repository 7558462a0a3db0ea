package logging

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestTraceWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("menu.open", map[string]interface{}{"items": 3})
	Trace("menu.close", nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open trace log: %v", err)
	}
	defer f.Close()

	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event   string                 `json:"event"`
			Payload map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode trace line %q: %v", scanner.Text(), err)
		}
		events = append(events, entry.Event)
		if entry.Event == "menu.open" && entry.Payload["items"] != float64(3) {
			t.Fatalf("unexpected payload %#v", entry.Payload)
		}
	}
	if strings.Join(events, ",") != "menu.open,menu.close" {
		t.Fatalf("unexpected events %v", events)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)
	t.Cleanup(func() { Configure("") })

	Trace("ignored", nil)
	if TraceEnabled() {
		t.Fatalf("expected tracing disabled")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err=%v", err)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}

	Error(nil)
	Error(errors.New("store unavailable"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var logged struct {
		Level   string            `json:"level"`
		Payload map[string]string `json:"payload"`
	}
	if err := json.Unmarshal(data, &logged); err != nil {
		t.Fatalf("decode error line %q: %v", data, err)
	}
	if logged.Level != "error" || logged.Payload["error"] != "store unavailable" {
		t.Fatalf("unexpected error entry %+v", logged)
	}
}
