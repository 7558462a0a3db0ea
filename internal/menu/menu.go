package menu

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/navigation"
	"github.com/atomicstack/search-menu/internal/query"
	"github.com/atomicstack/search-menu/internal/search"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
	Entry search.MenuItem
}

// Disabled reports whether the item can be activated.
func (i Item) Disabled() bool {
	return i.Entry.Disabled || i.Entry.Kind == search.KindHeader
}

const (
	SyntheticID = "synthetic"
	HeaderID    = "header"
	RenameID    = "rename"
	DeleteID    = "delete"
	FiltersID   = "filters"
)

// TypeItemID returns the identifier of the type entry at index.
func TypeItemID(index int) string {
	return fmt.Sprintf("type:%d", index)
}

// SavedItemID returns the identifier of the saved search with hash.
func SavedItemID(hash int64) string {
	return fmt.Sprintf("saved:%d", hash)
}

// ItemsFromMenu wraps assembled entries with stable identifiers so cursor
// position and filtering survive a rebuild.
func ItemsFromMenu(entries []search.MenuItem) []Item {
	items := make([]Item, 0, len(entries))
	typeIndex := 0
	for _, entry := range entries {
		var id string
		switch entry.Kind {
		case search.KindType:
			id = TypeItemID(typeIndex)
			typeIndex++
		case search.KindSynthetic:
			id = SyntheticID
		case search.KindHeader:
			id = HeaderID
		case search.KindSaved:
			id = SavedItemID(entry.Command.Hash)
		case search.KindOverflow:
			if entry.Command.Kind == search.CommandRename {
				id = RenameID
			} else {
				id = DeleteID
			}
		}
		items = append(items, Item{ID: id, Label: entry.Text, Entry: entry})
	}
	return items
}

// FiltersItem is the filters button beside the menu heading. It opens the
// advanced filter editor populated from the active query.
func FiltersItem() Item {
	return Item{
		ID:    FiltersID,
		Label: "Filters",
		Entry: search.MenuItem{
			Text:    "Filters",
			Icon:    search.IconFilters,
			Command: search.Command{Kind: search.CommandAdvancedFilters},
		},
	}
}

// OverflowItems returns the overflow level for a saved search item.
func OverflowItems(item Item) []Item {
	return ItemsFromMenu(item.Entry.Overflow)
}

// Store is the persistence the menu actions write to.
type Store interface {
	ClearAllFilters(ctx context.Context) error
	SetActiveQuery(ctx context.Context, raw string) error
	UpdateAdvancedFilters(ctx context.Context, values query.FilterFormValues) error
	RenameSavedSearch(ctx context.Context, hash int64, title string) error
	MarkPending(ctx context.Context, hash int64, action search.PendingAction) error
	DeleteSavedSearch(ctx context.Context, hash int64) error
}

// Context carries runtime data needed by actions.
type Context struct {
	Store       Store
	Navigator   navigation.Navigator
	WorkspaceID string
	// Query is the active query.
	Query *query.Query
}

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
	// Quit asks the program to exit because the host navigated away.
	Quit bool
	// Refresh asks for the saved searches to be fetched again.
	Refresh bool
}

// RenamePrompt requests the rename form for a saved search.
type RenamePrompt struct {
	Context Context
	Hash    int64
	Title   string
	Query   string
}

// DeletePrompt requests the delete confirmation for a saved search.
type DeletePrompt struct {
	Context Context
	Hash    int64
	Title   string
}

// TypeDefinition configures one search type entry.
type TypeDefinition struct {
	Title string
	Icon  search.Icon
	Query string
}

// DefaultTypes lists the built-in search types.
func DefaultTypes() []TypeDefinition {
	return []TypeDefinition{
		{Title: "Expenses", Icon: search.IconReceipt, Query: "type:expense status:all"},
		{Title: "Reports", Icon: search.IconDocument, Query: "type:expense-report status:all"},
		{Title: "Chats", Icon: search.IconChat, Query: "type:chat status:all"},
		{Title: "Invoices", Icon: search.IconMoney, Query: "type:invoice status:all"},
		{Title: "Trips", Icon: search.IconSuitcase, Query: "type:trip status:all"},
		{Title: "Tasks", Icon: search.IconCheckbox, Query: "type:task status:all"},
	}
}

// TypeEntries converts definitions into assembler entries. Each entry routes
// to its query, scoped to the workspace when one is given.
func TypeEntries(defs []TypeDefinition) []search.TypeEntry {
	entries := make([]search.TypeEntry, 0, len(defs))
	for _, def := range defs {
		parsed := query.Parse(def.Query)
		entries = append(entries, search.TypeEntry{
			Title: strings.TrimSpace(def.Title),
			Icon:  def.Icon,
			Route: func(workspaceID string) string {
				return navigation.SearchRoute(parsed.WithWorkspace(workspaceID).Canonical())
			},
			QueryHash: parsed.Hash(),
		})
	}
	return entries
}
