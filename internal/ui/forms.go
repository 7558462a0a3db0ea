package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
)

func (m *Model) handleRenameForm(msg tea.Msg) (bool, tea.Cmd) {
	form := m.renameForm
	if form == nil {
		return false, nil
	}
	cmd, state := form.Update(msg)
	switch state {
	case menu.FormCancelled:
		m.closeForm()
	case menu.FormSubmitted:
		m.closeForm()
		m.status.begin(menu.SavedItemID(form.Hash()), form.PendingLabel())
		if m.saved.SetPending(form.Hash(), search.PendingUpdate) {
			m.rebuild()
		}
	}
	return true, cmd
}

func (m *Model) closeForm() {
	m.renameForm = nil
	m.deleteConfirm = nil
	m.mode = ModeButton
}

// handleDeleteConfirm only takes keys so backend refreshes still reach the
// model while the modal is open.
func (m *Model) handleDeleteConfirm(msg tea.Msg) (bool, tea.Cmd) {
	confirm := m.deleteConfirm
	if _, isKey := msg.(tea.KeyMsg); confirm == nil || !isKey {
		return false, nil
	}
	cmd, done := confirm.Update(msg)
	if !done {
		return true, nil
	}
	m.closeForm()
	if cmd != nil {
		m.status.begin(menu.SavedItemID(confirm.Hash()), "Deleting…")
		if m.saved.SetPending(confirm.Hash(), search.PendingDelete) {
			m.rebuild()
		}
	}
	return true, cmd
}

func (m *Model) startRenameForm(prompt menu.RenamePrompt) {
	m.renameForm = menu.NewRenameForm(prompt)
	m.renameForm.SetSavedSearches(m.saved.Entries())
	m.mode = ModeRename
}

func (m *Model) startDeleteConfirm(prompt menu.DeletePrompt) {
	m.deleteConfirm = menu.NewDeleteConfirm(prompt)
	m.mode = ModeConfirmDelete
}

func (m *Model) viewRenameForm(button string) string {
	form := m.renameForm
	var f frame
	f.addStyled(button)
	f.blank()
	f.add(form.Title(), nil)
	f.blank()
	f.addStyled(form.InputView())
	f.section(form.Error(), styles.Error)
	f.section(form.Help(), nil)
	return f.String()
}

func (m *Model) viewDeleteConfirm(button string) string {
	body := strings.Join([]string{
		m.deleteConfirm.Title(),
		"",
		m.deleteConfirm.Prompt(),
		"",
		m.deleteConfirm.Help(),
	}, "\n")
	return button + "\n\n" + render(styles.Modal, body)
}
