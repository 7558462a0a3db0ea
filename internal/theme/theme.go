package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/search-menu/internal/search"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	DisabledItem          *lipgloss.Style
	SectionHeader         *lipgloss.Style
	Checkmark             *lipgloss.Style
	Heading               *lipgloss.Style
	FiltersButton         *lipgloss.Style
	Modal                 *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	PreviewTitle          *lipgloss.Style
	PreviewBody           *lipgloss.Style
}

var palette = search.Palette{
	Icon:        "245",
	SuccessFill: "34",
	Border:      "238",
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(string(palette.Border))),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color(string(palette.Border))),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color(string(palette.Border))).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
	),
	SectionHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Underline(true),
	),
	Checkmark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(string(palette.SuccessFill))).Bold(true),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	FiltersButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Border(lipgloss.NormalBorder(), false, true).BorderForeground(lipgloss.Color(string(palette.Border))).Padding(0, 1),
	),
	Modal: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(string(palette.Border))).Padding(0, 1),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	PreviewTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PreviewBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
}

var glyphs = map[search.Icon]string{
	search.IconReceipt:   "≡",
	search.IconFilters:   "⚙",
	search.IconBookmark:  "⚑",
	search.IconCheckmark: "✓",
	search.IconDownArrow: "▾",
	search.IconDocument:  "▤",
	search.IconChat:      "✉",
	search.IconSuitcase:  "✈",
	search.IconCheckbox:  "☑",
	search.IconMoney:     "$",
	search.IconPencil:    "✎",
	search.IconTrashcan:  "✗",
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Palette returns the icon fills handed to the menu assembler.
func Palette() search.Palette {
	return palette
}

// Glyph returns the terminal glyph for icon, or a blank cell for unknown
// icons so columns stay aligned.
func Glyph(icon search.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return " "
}

// Icon renders icon in fill. An empty fill uses the palette default.
func Icon(icon search.Icon, fill search.Color) string {
	if fill == "" {
		fill = palette.Icon
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(fill))).Render(Glyph(icon))
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
