package search

// DefaultSavedHeader is the section header used when the caller does not
// supply a localised one.
const DefaultSavedHeader = "Saved"

// Input is the immutable snapshot the assembler works from.
type Input struct {
	Entries       []TypeEntry
	ActiveIndex   int
	OverrideTitle string
	ActiveHash    int64
	WorkspaceID   string
	Saved         []SavedSearch
	Palette       Palette
	SavedHeader   string
	RenameLabel   string
	DeleteLabel   string
}

// Menu is the assembled popover plus the heading of the closed button.
type Menu struct {
	Heading Heading
	Items   []MenuItem
	// Current is the saved search matching the active query, if any.
	Current    SavedSearch
	HasCurrent bool
}

// Assemble builds the ordered popover list: type entries, an optional
// synthetic entry for an unsaved filter, then a header and the saved
// searches when there are any.
func Assemble(in Input) Menu {
	resolution := ResolveSelection(in.Entries, in.ActiveIndex, in.OverrideTitle)
	current, hasCurrent := FindCurrent(in.Saved, in.ActiveHash)

	items := make([]MenuItem, 0, len(in.Entries)+len(in.Saved)+2)
	for i, entry := range in.Entries {
		selected := resolution.Selected[i]
		fill := in.Palette.Icon
		if selected {
			fill = in.Palette.SuccessFill
		}
		items = append(items, MenuItem{
			Kind:          KindType,
			Text:          entry.Title,
			Icon:          entry.Icon,
			IconFill:      fill,
			Selected:      selected,
			ShowCheckmark: selected,
			Command: Command{
				Kind:      CommandNavigate,
				Route:     entry.route(in.WorkspaceID),
				CloseMenu: true,
			},
		})
	}

	if in.OverrideTitle != "" && !hasCurrent {
		items = append(items, MenuItem{
			Kind:     KindSynthetic,
			Text:     in.OverrideTitle,
			Icon:     IconFilters,
			IconFill: in.Palette.SuccessFill,
			Selected: true,
			Command:  Command{Kind: CommandDismiss, CloseMenu: true},
		})
	}

	if len(in.Saved) > 0 {
		header := in.SavedHeader
		if header == "" {
			header = DefaultSavedHeader
		}
		items = append(items, MenuItem{
			Kind:     KindHeader,
			Text:     header,
			Disabled: true,
		})
		for _, saved := range in.Saved {
			items = append(items, savedItem(in, saved, hasCurrent && current.Hash == saved.Hash))
		}
	}

	return Menu{
		Heading:    resolution.Heading,
		Items:      items,
		Current:    current,
		HasCurrent: hasCurrent,
	}
}

func savedItem(in Input, saved SavedSearch, selected bool) MenuItem {
	fill := in.Palette.Icon
	if selected {
		fill = in.Palette.SuccessFill
	}
	deleting := saved.IsDeleting()
	return MenuItem{
		Kind:     KindSaved,
		Text:     saved.Title,
		Icon:     IconBookmark,
		IconFill: fill,
		Selected: selected,
		Disabled: deleting,
		Command: Command{
			Kind:      CommandApplySaved,
			Hash:      saved.Hash,
			Title:     saved.Title,
			Query:     saved.Query,
			CloseMenu: true,
		},
		PendingAction:    saved.PendingAction,
		Overflow:         OverflowMenu(saved, in.RenameLabel, in.DeleteLabel),
		OverflowDisabled: deleting,
	}
}

// OverflowMenu returns the rename and delete actions for a saved search.
// Both close the popover before running.
func OverflowMenu(saved SavedSearch, renameLabel, deleteLabel string) []MenuItem {
	if renameLabel == "" {
		renameLabel = "Rename"
	}
	if deleteLabel == "" {
		deleteLabel = "Delete"
	}
	return []MenuItem{
		{
			Kind: KindOverflow,
			Text: renameLabel,
			Icon: IconPencil,
			Command: Command{
				Kind:      CommandRename,
				Hash:      saved.Hash,
				Title:     saved.Title,
				Query:     saved.Query,
				CloseMenu: true,
			},
		},
		{
			Kind: KindOverflow,
			Text: deleteLabel,
			Icon: IconTrashcan,
			Command: Command{
				Kind:      CommandConfirmDelete,
				Hash:      saved.Hash,
				Title:     saved.Title,
				CloseMenu: true,
			},
		},
	}
}
