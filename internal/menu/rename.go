package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/search"
)

const maxTitleLength = 64

const duplicateTitleError = "A saved search with that name already exists"

// FormState is what a form update left the form in.
type FormState int

const (
	FormEditing FormState = iota
	FormSubmitted
	FormCancelled
)

// RenameForm edits the title of one saved search. Titles that collide with
// another saved search, ignoring case, are refused.
type RenameForm struct {
	ctx      Context
	hash     int64
	original string
	query    string

	input textinput.Model
	taken map[string]struct{}
	err   string
}

func NewRenameForm(prompt RenamePrompt) *RenameForm {
	input := textinput.New()
	input.Placeholder = "saved search name"
	input.CharLimit = maxTitleLength
	input.SetValue(prompt.Title)
	input.Focus()
	return &RenameForm{
		ctx:      prompt.Context,
		hash:     prompt.Hash,
		original: strings.TrimSpace(prompt.Title),
		query:    prompt.Query,
		input:    input,
		taken:    map[string]struct{}{},
	}
}

func (f *RenameForm) Context() Context  { return f.ctx }
func (f *RenameForm) Hash() int64       { return f.hash }
func (f *RenameForm) Query() string     { return f.query }
func (f *RenameForm) Error() string     { return f.err }
func (f *RenameForm) InputView() string { return f.input.View() }
func (f *RenameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }

func (f *RenameForm) Title() string {
	if f.original == "" {
		return "Rename saved search"
	}
	return "Rename " + f.original
}

func (f *RenameForm) Help() string { return "Press Enter to rename. Esc to cancel." }

// PendingLabel describes the rename while it runs, e.g. "Old → New".
func (f *RenameForm) PendingLabel() string {
	name := f.Value()
	if name == "" || f.original == "" {
		return name
	}
	return f.original + " → " + name
}

// Update applies msg. Submitting returns the rename command; an empty or
// unchanged title cancels instead.
func (f *RenameForm) Update(msg tea.Msg) (tea.Cmd, FormState) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlU:
			f.input.SetValue("")
			f.input.CursorStart()
			f.err = ""
			return nil, FormEditing
		case tea.KeyEsc:
			events.Saved.CancelRename(f.hash, events.SavedReasonEscape)
			return nil, FormCancelled
		case tea.KeyEnter:
			return f.submit()
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.err = f.check(f.Value())
	return cmd, FormEditing
}

func (f *RenameForm) submit() (tea.Cmd, FormState) {
	title := f.Value()
	switch {
	case title == "":
		events.Saved.CancelRename(f.hash, events.SavedReasonEmpty)
		return nil, FormCancelled
	case title == f.original:
		events.Saved.CancelRename(f.hash, events.SavedReasonUnchanged)
		return nil, FormCancelled
	}
	if f.err = f.check(title); f.err != "" {
		return nil, FormEditing
	}
	events.Saved.SubmitRename(f.hash, title)
	return RenameCommand(f.ctx, f.hash, title), FormSubmitted
}

// SetSavedSearches replaces the titles a new title must not collide with.
// The saved search being renamed is skipped.
func (f *RenameForm) SetSavedSearches(entries []search.SavedSearch) {
	taken := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if key := titleKey(entry.Title); entry.Hash != f.hash && key != "" {
			taken[key] = struct{}{}
		}
	}
	f.taken = taken
	f.err = f.check(f.Value())
}

func (f *RenameForm) check(title string) string {
	key := titleKey(title)
	if key == "" {
		return ""
	}
	if _, dup := f.taken[key]; dup {
		return duplicateTitleError
	}
	return ""
}

func titleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// DeleteConfirm is the state of the delete confirmation modal.
type DeleteConfirm struct {
	ctx   Context
	hash  int64
	title string
}

func NewDeleteConfirm(prompt DeletePrompt) *DeleteConfirm {
	return &DeleteConfirm{ctx: prompt.Context, hash: prompt.Hash, title: prompt.Title}
}

func (d *DeleteConfirm) Hash() int64 { return d.hash }

func (d *DeleteConfirm) Title() string { return "Delete saved search?" }

func (d *DeleteConfirm) Prompt() string {
	return fmt.Sprintf("Are you sure you want to delete %q?", d.title)
}

func (d *DeleteConfirm) Help() string { return "y/enter delete · n/esc cancel" }

// Update returns the delete command once confirmed. The second result
// reports that the modal should close.
func (d *DeleteConfirm) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch key.String() {
	case "y", "Y", "enter":
		return DeleteCommand(d.ctx, d.hash, d.title), true
	case "n", "N", "esc", "q":
		events.Saved.CancelDelete(d.hash)
		return nil, true
	}
	return nil, false
}
