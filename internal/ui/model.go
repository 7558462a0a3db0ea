package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/backend"
	"github.com/atomicstack/search-menu/internal/data/dispatcher"
	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/navigation"
	"github.com/atomicstack/search-menu/internal/search"
	"github.com/atomicstack/search-menu/internal/state"
	"github.com/atomicstack/search-menu/internal/theme"
	"github.com/atomicstack/search-menu/internal/ui/command"
	uistate "github.com/atomicstack/search-menu/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	// ModeButton shows only the closed menu button.
	ModeButton Mode = iota
	ModeMenu
	ModeRename
	ModeConfirmDelete
)

const (
	menuHeaderSeparator = " → "
	rootLevelID         = "search"
	overflowLevelPrefix = "overflow:"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item) *level {
	return uistate.NewLevel(id, title, items)
}

// Config carries everything the model needs from the caller.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	Watcher     *backend.Watcher
	Store       menu.Store
	Navigator   navigation.Navigator
	Types       []menu.TypeDefinition
	WorkspaceID string
	SavedHeader string

	// OpenMenu starts with the popover already open.
	OpenMenu bool

	// Query is the active query until the store reports one.
	Query string
}

// Model implements the Bubble Tea model for the search filter menu.
type Model struct {
	stack             []*level
	status            status
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	showFooter        bool
	verbose           bool
	renameForm        *menu.RenameForm
	deleteConfirm     *menu.DeleteConfirm
	filterCursor      cursor.Model
	filterFocused     bool
	filterCursorDirty bool
	help              help.Model

	handlers map[reflect.Type]msgHandler

	registry    *menu.Registry
	bus         *command.Bus
	mode        Mode
	store       menu.Store
	navigator   navigation.Navigator
	entries     []search.TypeEntry
	workspaceID string
	savedHeader string
	assembled   search.Menu
	saved       state.SavedSearchStore
	query       state.QueryStore
	dispatcher  *dispatcher.Dispatcher
}

// NewModel initialises the UI state from cfg and assembles the first menu.
func NewModel(cfg Config) *Model {
	types := cfg.Types
	if len(types) == 0 {
		types = menu.DefaultTypes()
	}
	saved := state.NewSavedSearchStore()
	queries := state.NewQueryStore(cfg.Query)
	m := &Model{
		registry:     menu.BuildRegistry(),
		bus:          command.New(),
		backend:      cfg.Watcher,
		showFooter:   cfg.ShowFooter,
		verbose:      cfg.Verbose,
		mode:         ModeButton,
		store:        cfg.Store,
		navigator:    cfg.Navigator,
		entries:      menu.TypeEntries(types),
		workspaceID:  cfg.WorkspaceID,
		savedHeader:  cfg.SavedHeader,
		saved:        saved,
		query:        queries,
		dispatcher:   dispatcher.New(saved, queries),
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.filterCursor = cursor.New()
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	m.help = newHelp()
	m.stack = []*level{newLevel(rootLevelID, "Search", nil)}
	m.rebuild()
	if cfg.OpenMenu {
		m.openMenu()
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, nextBackendEvent(m.backend))
	}
	m.filterFocused = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	var blink tea.Cmd
	if m.filterCursor, blink = m.filterCursor.Update(msg); blink != nil {
		cmds = append(cmds, blink)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	// Backend and result messages keep flowing while a form is open.
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.handlerFor(msg) != nil {
		return false, nil
	}
	switch m.mode {
	case ModeRename:
		return m.handleRenameForm(msg)
	case ModeConfirmDelete:
		return m.handleDeleteConfirm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menu.RenamePrompt{}): m.handlePromptMsg,
		reflect.TypeOf(menu.DeletePrompt{}): m.handlePromptMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.filterFocused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Mode reports which surface is active.
func (m *Model) Mode() Mode {
	return m.mode
}

// Heading returns the icon and title of the closed menu button.
func (m *Model) Heading() search.Heading {
	return m.assembled.Heading
}

// rebuild assembles the menu from the current stores and refreshes every
// level that displays it.
func (m *Model) rebuild() {
	parsed := m.query.Parsed()
	saved := m.saved.Entries()
	index, title := search.ActiveSelectionFor(m.entries, saved, parsed.Unscoped().Hash(), m.query.Hash(), m.query.Query())
	m.assembled = search.Assemble(search.Input{
		Entries:       m.entries,
		ActiveIndex:   index,
		OverrideTitle: title,
		ActiveHash:    m.query.Hash(),
		WorkspaceID:   m.workspaceID,
		Saved:         saved,
		Palette:       theme.Palette(),
		SavedHeader:   m.savedHeader,
	})
	items := menu.ItemsFromMenu(m.assembled.Items)
	root := m.stack[0]
	root.UpdateItems(items)
	m.syncViewport(root)
	if len(m.stack) > 1 {
		m.refreshOverflowLevel(items)
	}
	if m.renameForm != nil {
		m.renameForm.SetSavedSearches(saved)
	}
}

// refreshOverflowLevel updates the open overflow level from the rebuilt root
// items, closing it when its saved search is gone or can no longer be edited.
func (m *Model) refreshOverflowLevel(items []menu.Item) {
	overflow := m.stack[len(m.stack)-1]
	for _, item := range items {
		if overflowLevelID(item) != overflow.ID {
			continue
		}
		if item.Entry.OverflowDisabled {
			break
		}
		overflow.UpdateItems(menu.OverflowItems(item))
		m.syncViewport(overflow)
		return
	}
	m.stack = m.stack[:1]
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		Store:       m.store,
		Navigator:   m.navigator,
		WorkspaceID: m.workspaceID,
		Query:       m.query.Parsed(),
	}
}
