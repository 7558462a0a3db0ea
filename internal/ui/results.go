package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/backend"
	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/menu"
)

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// BackendEvent wraps a watcher event as a message for the model, for callers
// that read the watcher themselves.
func BackendEvent(evt backend.Event) tea.Msg {
	return backendEventMsg{event: evt}
}

// nextBackendEvent blocks on the watcher and answers with its next event, or
// backendDoneMsg once the watcher has stopped.
func nextBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		if evt, ok := <-w.Events(); ok {
			return BackendEvent(evt)
		}
		return backendDoneMsg{}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	wrapped, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	evt := wrapped.event
	m.status.record(evt.Kind, evt.Err)
	if evt.Err != nil {
		events.App.Backend(evt.Kind.String(), evt.Err)
	} else if res := m.dispatcher.Handle(evt); res.Any() {
		if res.SavedUpdated {
			events.Saved.Refresh(len(m.saved.Entries()))
		}
		m.rebuild()
	}
	if m.backend == nil {
		return nil
	}
	return nextBackendEvent(m.backend)
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// handleActionResultMsg settles the action in flight. Quitting results only
// leave a notice behind in verbose mode since the program is about to exit.
func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.status.settle()
	if result.Refresh && m.backend != nil {
		m.backend.Refresh()
	}
	if result.Err != nil {
		m.status.fail(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	m.status.reset()
	if result.Info != "" && (m.verbose || !result.Quit) {
		m.status.notify(result.Info)
	}
	events.Action.Success(result.Info)
	if result.Quit {
		return tea.Quit
	}
	return nil
}

// handlePromptMsg opens the form a rename or delete action asked for.
func (m *Model) handlePromptMsg(msg tea.Msg) tea.Cmd {
	m.status.settle()
	m.status.reset()
	switch prompt := msg.(type) {
	case menu.RenamePrompt:
		m.startRenameForm(prompt)
	case menu.DeletePrompt:
		m.startDeleteConfirm(prompt)
	}
	return nil
}
