// Package search derives the state of the narrow search filter menu: which
// search type is active, which saved search matches the loaded query and the
// ordered list of items the popover renders.
//
// Everything here is pure. Callers hand in immutable snapshots (type entries,
// the active selection, saved searches, the colour palette and any localised
// strings) and get back a fresh Menu value. Commands are returned as data so
// the rendering layer decides how to execute them.
package search

// Icon names a glyph. The UI maps icons to terminal glyphs at render time.
type Icon string

const (
	IconNone      Icon = ""
	IconReceipt   Icon = "receipt"
	IconFilters   Icon = "filters"
	IconBookmark  Icon = "bookmark"
	IconCheckmark Icon = "checkmark"
	IconDownArrow Icon = "down-arrow"
	IconDocument  Icon = "document"
	IconChat      Icon = "chat"
	IconSuitcase  Icon = "suitcase"
	IconCheckbox  Icon = "checkbox"
	IconMoney     Icon = "money"
	IconPencil    Icon = "pencil"
	IconTrashcan  Icon = "trashcan"
)

// Color is an opaque colour reference understood by the theme.
type Color string

// Palette carries the fills the assembler needs. It replaces any ambient
// theme lookup inside the core.
type Palette struct {
	Icon        Color
	SuccessFill Color
	Border      Color
}

// TypeEntry is one selectable search type.
type TypeEntry struct {
	Title string
	Icon  Icon
	// Route builds the destination for this type, scoped to the workspace
	// when one is set.
	Route func(workspaceID string) string
	// QueryHash identifies the canonical query behind the entry. Zero means
	// unknown and never matches an active query.
	QueryHash int64
}

func (e TypeEntry) route(workspaceID string) string {
	if e.Route == nil {
		return ""
	}
	return e.Route(workspaceID)
}

// PendingAction marks an in-flight mutation on a saved search.
type PendingAction string

const (
	PendingNone   PendingAction = ""
	PendingAdd    PendingAction = "add"
	PendingUpdate PendingAction = "update"
	PendingDelete PendingAction = "delete"
)

// SavedSearch is a persisted filter as projected for the menu.
type SavedSearch struct {
	Hash          int64
	Title         string
	Query         string
	PendingAction PendingAction
}

// IsDeleting reports whether a delete is in flight for the saved search.
func (s SavedSearch) IsDeleting() bool {
	return s.PendingAction == PendingDelete
}

// CommandKind enumerates the outbound commands a menu item can trigger.
type CommandKind int

const (
	CommandNone CommandKind = iota
	// CommandNavigate clears all filters then navigates to Route.
	CommandNavigate
	// CommandDismiss closes the popover.
	CommandDismiss
	// CommandApplySaved re-applies the saved search identified by Hash.
	CommandApplySaved
	// CommandRename opens the rename prompt for the saved search.
	CommandRename
	// CommandConfirmDelete asks for confirmation before deleting Hash.
	CommandConfirmDelete
	// CommandAdvancedFilters opens the advanced filter editor populated
	// from the active query.
	CommandAdvancedFilters
)

var commandNames = map[CommandKind]string{
	CommandNone:            "none",
	CommandNavigate:        "navigate",
	CommandDismiss:         "dismiss",
	CommandApplySaved:      "apply-saved",
	CommandRename:          "rename",
	CommandConfirmDelete:   "confirm-delete",
	CommandAdvancedFilters: "advanced-filters",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is a side effect requested by a menu item.
type Command struct {
	Kind  CommandKind
	Route string
	Hash  int64
	Title string
	Query string
	// CloseMenu asks the UI to dismiss the popover before running the
	// command.
	CloseMenu bool
}

// ItemKind distinguishes the groups of the assembled list.
type ItemKind int

const (
	KindType ItemKind = iota
	KindSynthetic
	KindHeader
	KindSaved
	KindOverflow
)

// MenuItem is the render-ready shape of a popover entry.
type MenuItem struct {
	Kind          ItemKind
	Text          string
	Icon          Icon
	IconFill      Color
	Selected      bool
	Disabled      bool
	ShowCheckmark bool
	Command       Command
	PendingAction PendingAction
	// Overflow holds the rename/delete actions of a saved search.
	Overflow         []MenuItem
	OverflowDisabled bool
}

// HasOverflow reports whether the item carries an overflow menu.
func (i MenuItem) HasOverflow() bool {
	return len(i.Overflow) > 0
}

// Heading is the icon and title shown on the closed menu button.
type Heading struct {
	Icon  Icon
	Title string
}
