package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/search"
)

// Registry maps the commands carried by assembled items to the actions that
// execute them.
type Registry struct {
	actions map[search.CommandKind]Action
}

// ActionHandlers lists the default action for every command kind.
func ActionHandlers() map[search.CommandKind]Action {
	return map[search.CommandKind]Action{
		search.CommandNavigate:        NavigateAction,
		search.CommandDismiss:         DismissAction,
		search.CommandApplySaved:      ApplySavedAction,
		search.CommandRename:          RenamePromptAction,
		search.CommandConfirmDelete:   ConfirmDeleteAction,
		search.CommandAdvancedFilters: AdvancedFiltersAction,
	}
}

// BuildRegistry constructs the registry from the default handlers.
func BuildRegistry() *Registry {
	return &Registry{actions: ActionHandlers()}
}

// Find returns the action for kind.
func (r *Registry) Find(kind search.CommandKind) (Action, bool) {
	if r == nil {
		return nil, false
	}
	action, ok := r.actions[kind]
	return action, ok
}

// Run executes the command of item. Disabled items and unknown commands run
// nothing.
func (r *Registry) Run(ctx Context, item Item) (tea.Cmd, bool) {
	if item.Disabled() {
		return nil, false
	}
	action, ok := r.Find(item.Entry.Command.Kind)
	if !ok {
		return nil, false
	}
	return action(ctx, item), true
}
