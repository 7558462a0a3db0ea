package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
	"github.com/atomicstack/search-menu/internal/theme"
)

// View implements tea.Model.
func (m *Model) View() string {
	button := m.buttonLine()
	switch m.mode {
	case ModeRename:
		if m.renameForm != nil {
			return m.viewRenameForm(button)
		}
	case ModeConfirmDelete:
		if m.deleteConfirm != nil {
			return m.viewDeleteConfirm(button)
		}
	case ModeMenu:
		return m.viewMenu(button)
	}
	return m.viewButton(button)
}

// buttonLine renders the closed menu: the heading icon and title, a down
// arrow and the filters button.
func (m *Model) buttonLine() string {
	heading := m.assembled.Heading
	title := heading.Title
	if styles.Heading != nil {
		title = styles.Heading.Render(title)
	}
	parts := []string{theme.Icon(heading.Icon, theme.Palette().Icon)}
	if heading.Title != "" {
		parts = append(parts, title)
	}
	parts = append(parts, theme.Icon(search.IconDownArrow, theme.Palette().Icon))
	filters := theme.Glyph(search.IconFilters) + " Filters"
	if styles.FiltersButton != nil {
		filters = styles.FiltersButton.Render(filters)
	}
	return strings.Join(parts, " ") + "   " + filters
}

func (m *Model) viewButton(button string) string {
	var f frame
	f.addStyled(button)
	if m.status.loading && m.status.pendingLabel != "" {
		f.add(fmt.Sprintf("Working on %s…", m.status.pendingLabel), styles.Loading)
	}
	f.section(m.status.currentNotice(), styles.Info)
	if msg, ok := m.status.backendIssue(); ok {
		f.add("Backend: "+msg, styles.Error)
	}
	if m.status.errText != "" {
		f.add("Error: "+m.status.errText, styles.Error)
	}
	if m.showFooter {
		f.blank()
		f.addStyled(m.help.ShortHelpView(keys.button.ShortHelp()))
	}
	f.clip(m.width, m.height)
	return f.String()
}

func (m *Model) viewMenu(button string) string {
	var body frame
	body.addStyled(button)
	if header := m.menuHeader(); header != "" {
		body.add(header, styles.Header)
	}
	if current := m.currentLevel(); current != nil {
		m.appendItems(&body, current)
	}
	if preview := m.activePreview(); preview != "" {
		body.section("Query: "+preview, styles.PreviewBody)
	}
	body.section(m.status.currentNotice(), styles.Info)
	if m.showFooter {
		body.blank()
		body.addStyled(m.help.ShortHelpView(keys.menu.ShortHelp()))
	}
	// The bottom two rows always hold the status line and the filter prompt.
	body.clip(m.width, m.height-2)

	var bottom frame
	bottom.add(m.status.problem(), styles.Error)
	bottom.addStyled(m.filterPrompt())
	bottom.clip(m.width, 0)
	body.rows = append(body.rows, bottom.rows...)
	return body.String()
}

func (m *Model) appendItems(f *frame, l *level) {
	if len(l.Items) == 0 {
		msg := "(no entries)"
		if filter := l.Filter(); filter != "" {
			msg = fmt.Sprintf("No matches for %q", filter)
		}
		f.add(msg, styles.Info)
		return
	}
	start, end := l.Window(m.maxVisibleItems())
	for i := start; i < end; i++ {
		f.addStyled(m.itemLine(l.Items[i], i == l.Cursor, m.width))
	}
}

// itemLine renders one popover entry. A positive width pads the label so the
// highlight spans the whole row.
func (m *Model) itemLine(item menu.Item, highlighted bool, width int) string {
	entry := item.Entry
	if entry.Kind == search.KindHeader {
		return render(styles.SectionHeader, item.Label)
	}
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if highlighted {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	if item.Disabled() {
		lineStyle = styles.DisabledItem
	}
	indicator := "▌"
	if indicatorStyle != nil {
		indicator = indicatorStyle.Render(indicator)
	}
	prefix := indicator + " " + theme.Icon(entry.Icon, entry.IconFill) + " "
	label := item.Label
	if entry.PendingAction == search.PendingDelete {
		label += " (deleting…)"
	}
	suffix := ""
	if entry.ShowCheckmark {
		suffix = " " + theme.Glyph(search.IconCheckmark)
		if styles.Checkmark != nil {
			suffix = styles.Checkmark.Render(suffix)
		}
	}
	if entry.HasOverflow() && !entry.OverflowDisabled {
		suffix += " ⋯"
	}
	if width > 0 {
		used := lipgloss.Width(prefix) + lipgloss.Width(suffix)
		if pad := width - used - len([]rune(label)); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
	}
	if lineStyle != nil {
		label = lineStyle.Render(label)
	}
	return prefix + label + suffix
}

// activePreview returns the query behind the highlighted saved search.
func (m *Model) activePreview() string {
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	item, ok := current.CurrentItem()
	if !ok || item.Entry.Kind != search.KindSaved {
		return ""
	}
	return item.Entry.Command.Query
}

func (m *Model) menuHeader() string {
	if len(m.stack) <= 1 {
		return ""
	}
	segments := make([]string, 0, len(m.stack))
	for _, lvl := range m.stack {
		if title := strings.TrimSpace(lvl.Title); title != "" {
			segments = append(segments, title)
		}
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // menu button + bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if m.status.currentNotice() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if current := m.currentLevel(); current != nil && hasSavedItems(current.Items) {
		used += 2 // blank separator + query preview
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func hasSavedItems(items []menu.Item) bool {
	for _, item := range items {
		if item.Entry.Kind == search.KindSaved {
			return true
		}
	}
	return false
}
