package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/navigation"
	"github.com/atomicstack/search-menu/internal/search"
)

const storeTimeout = 5 * time.Second

var (
	errNoStore     = errors.New("no search store configured")
	errNoNavigator = errors.New("no navigator configured")
)

func storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

func checkContext(ctx Context, needStore bool) error {
	if needStore && ctx.Store == nil {
		return errNoStore
	}
	if ctx.Navigator == nil {
		return errNoNavigator
	}
	return nil
}

// checkOverflow accepts only the overflow entry of a saved search carrying
// the wanted command. Any hash, zero included, is a valid saved search.
func checkOverflow(item Item, want search.CommandKind) error {
	if item.Entry.Kind != search.KindOverflow || item.Entry.Command.Kind != want {
		return fmt.Errorf("%s is not a saved search action", item.Label)
	}
	return nil
}

// NavigateAction clears every filter, makes the entry's query active and
// navigates to the entry's route.
func NavigateAction(ctx Context, item Item) tea.Cmd {
	route := item.Entry.Command.Route
	if route == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("no route for %s", item.Label)} }
	}
	return func() tea.Msg {
		if err := checkContext(ctx, true); err != nil {
			return ActionResult{Err: err}
		}
		c, cancel := storeContext()
		defer cancel()
		events.Navigation.ClearFilters()
		if err := ctx.Store.ClearAllFilters(c); err != nil {
			return ActionResult{Err: err}
		}
		if raw, ok := navigation.QueryFromRoute(route); ok {
			if err := ctx.Store.SetActiveQuery(c, raw); err != nil {
				return ActionResult{Err: err}
			}
		}
		if err := ctx.Navigator.Navigate(route); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Showing %s", item.Label), Quit: true}
	}
}

// DismissAction closes the popover without doing anything else.
func DismissAction(Context, Item) tea.Cmd {
	return nil
}

// ApplySavedAction makes a saved search the active query and navigates to it.
func ApplySavedAction(ctx Context, item Item) tea.Cmd {
	cmd := item.Entry.Command
	return func() tea.Msg {
		if err := checkContext(ctx, true); err != nil {
			return ActionResult{Err: err}
		}
		c, cancel := storeContext()
		defer cancel()
		events.Saved.Apply(cmd.Hash, cmd.Query)
		if err := ctx.Store.SetActiveQuery(c, cmd.Query); err != nil {
			return ActionResult{Err: err}
		}
		if err := ctx.Navigator.Navigate(navigation.SearchRoute(cmd.Query)); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: fmt.Sprintf("Showing %s", cmd.Title), Quit: true}
	}
}

// RenamePromptAction opens the rename form for a saved search.
func RenamePromptAction(ctx Context, item Item) tea.Cmd {
	cmd := item.Entry.Command
	if err := checkOverflow(item, search.CommandRename); err != nil {
		return func() tea.Msg { return ActionResult{Err: err} }
	}
	return func() tea.Msg {
		events.Saved.RenamePrompt(cmd.Hash, cmd.Title)
		return RenamePrompt{Context: ctx, Hash: cmd.Hash, Title: cmd.Title, Query: cmd.Query}
	}
}

// ConfirmDeleteAction asks for confirmation before deleting a saved search.
func ConfirmDeleteAction(ctx Context, item Item) tea.Cmd {
	cmd := item.Entry.Command
	if err := checkOverflow(item, search.CommandConfirmDelete); err != nil {
		return func() tea.Msg { return ActionResult{Err: err} }
	}
	return func() tea.Msg {
		events.Saved.DeletePrompt(cmd.Hash, cmd.Title)
		return DeletePrompt{Context: ctx, Hash: cmd.Hash, Title: cmd.Title}
	}
}

// AdvancedFiltersAction runs the filters button from a menu item.
func AdvancedFiltersAction(ctx Context, _ Item) tea.Cmd {
	return AdvancedFiltersCommand(ctx)
}

// AdvancedFiltersCommand pre-populates the advanced filter form from the
// active query and opens the editor.
func AdvancedFiltersCommand(ctx Context) tea.Cmd {
	return func() tea.Msg {
		if err := checkContext(ctx, true); err != nil {
			return ActionResult{Err: err}
		}
		if ctx.Query == nil {
			return ActionResult{Err: fmt.Errorf("no active query")}
		}
		values := ctx.Query.FormValues()
		c, cancel := storeContext()
		defer cancel()
		events.Navigation.AdvancedFilters(values.Keys())
		if err := ctx.Store.UpdateAdvancedFilters(c, values); err != nil {
			return ActionResult{Err: err}
		}
		if err := ctx.Navigator.Navigate(navigation.AdvancedFiltersRoute); err != nil {
			return ActionResult{Err: err}
		}
		return ActionResult{Info: "Opened advanced filters", Quit: true}
	}
}

// RenameCommand persists a new title for a saved search.
func RenameCommand(ctx Context, hash int64, title string) tea.Cmd {
	return func() tea.Msg {
		if ctx.Store == nil {
			return ActionResult{Err: errNoStore}
		}
		if title == "" {
			return ActionResult{Err: fmt.Errorf("saved search title required")}
		}
		c, cancel := storeContext()
		defer cancel()
		events.Saved.Rename(hash, title)
		if err := ctx.Store.RenameSavedSearch(c, hash, title); err != nil {
			return ActionResult{Err: err, Refresh: true}
		}
		return ActionResult{Info: fmt.Sprintf("Renamed to %s", title), Refresh: true}
	}
}

// DeleteCommand marks a saved search as pending delete and then removes it.
func DeleteCommand(ctx Context, hash int64, title string) tea.Cmd {
	return func() tea.Msg {
		if ctx.Store == nil {
			return ActionResult{Err: errNoStore}
		}
		c, cancel := storeContext()
		defer cancel()
		events.Saved.Delete(hash)
		if err := ctx.Store.MarkPending(c, hash, search.PendingDelete); err != nil {
			return ActionResult{Err: err, Refresh: true}
		}
		if err := ctx.Store.DeleteSavedSearch(c, hash); err != nil {
			return ActionResult{Err: err, Refresh: true}
		}
		return ActionResult{Info: fmt.Sprintf("Deleted %s", title), Refresh: true}
	}
}
