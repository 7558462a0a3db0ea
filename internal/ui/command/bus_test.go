package command

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/menu"
)

func TestExecuteReturnsActionMessage(t *testing.T) {
	want := menu.ActionResult{Info: "done"}
	handler := func(menu.Context, menu.Item) tea.Cmd {
		return func() tea.Msg { return want }
	}
	msg := New().Execute(menu.Context{}, Request{ID: "type:0", Label: "Expenses", Handler: handler})()
	if got, ok := msg.(menu.ActionResult); !ok || got.Info != "done" {
		t.Fatalf("expected action result, got %#v", msg)
	}
}

func TestExecuteAnswersEmptyResultForNoOps(t *testing.T) {
	bus := New()
	for name, handler := range map[string]menu.Action{
		"nil handler": nil,
		"nil command": func(menu.Context, menu.Item) tea.Cmd { return nil },
		"nil message": func(menu.Context, menu.Item) tea.Cmd { return func() tea.Msg { return nil } },
	} {
		msg := bus.Execute(menu.Context{}, Request{ID: "x", Handler: handler})()
		result, ok := msg.(menu.ActionResult)
		if !ok {
			t.Fatalf("%s: expected action result, got %T", name, msg)
		}
		if result.Err != nil || result.Quit {
			t.Fatalf("%s: expected empty result, got %#v", name, result)
		}
	}
}

func TestExecutePassesErrorsThrough(t *testing.T) {
	boom := errors.New("boom")
	handler := func(menu.Context, menu.Item) tea.Cmd {
		return func() tea.Msg { return menu.ActionResult{Err: boom} }
	}
	msg := New().Execute(menu.Context{}, Request{ID: "x", Handler: handler})()
	if result := msg.(menu.ActionResult); !errors.Is(result.Err, boom) {
		t.Fatalf("expected boom, got %v", result.Err)
	}
}

func TestExecuteRecoversFromPanics(t *testing.T) {
	handler := func(menu.Context, menu.Item) tea.Cmd {
		return func() tea.Msg { panic("store went away") }
	}
	bus := New()
	msg := bus.Execute(menu.Context{}, Request{ID: "saved:1", Label: "Travel", Handler: handler})()
	result, ok := msg.(menu.ActionResult)
	if !ok || result.Err == nil || result.Err.Error() != "Travel failed: store went away" {
		t.Fatalf("expected recovered error, got %#v", msg)
	}
	if bus.Running("saved:1") {
		t.Fatalf("expected request released after panic")
	}
}

func TestExecuteDropsDuplicateWhileRunning(t *testing.T) {
	bus := New()
	handler := func(menu.Context, menu.Item) tea.Cmd {
		return func() tea.Msg { return menu.ActionResult{Info: "ok"} }
	}
	first := bus.Execute(menu.Context{}, Request{ID: "type:0", Handler: handler})
	if !bus.Running("type:0") {
		t.Fatalf("expected request to be running until its command finishes")
	}
	if dup := bus.Execute(menu.Context{}, Request{ID: "type:0", Handler: handler}); dup != nil {
		t.Fatalf("expected duplicate request to be dropped")
	}
	first()
	if bus.Running("type:0") {
		t.Fatalf("expected request released")
	}
	if again := bus.Execute(menu.Context{}, Request{ID: "type:0", Handler: handler}); again == nil {
		t.Fatalf("expected a new command once the first finished")
	}
}
