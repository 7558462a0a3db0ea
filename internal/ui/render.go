package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// row is one line of output. Rows built from pre-styled text are passed
// through untouched apart from width clipping.
type row struct {
	text   string
	style  *lipgloss.Style
	styled bool
}

// frame accumulates the rows of a view before they are clipped to the
// terminal and joined.
type frame struct {
	rows []row
}

func (f *frame) add(text string, style *lipgloss.Style) {
	f.rows = append(f.rows, row{text: text, style: style})
}

func (f *frame) addStyled(text string) {
	f.rows = append(f.rows, row{text: text, styled: true})
}

func (f *frame) blank() {
	f.rows = append(f.rows, row{})
}

// section adds a blank spacer followed by text, skipping empty text.
func (f *frame) section(text string, style *lipgloss.Style) {
	if text == "" {
		return
	}
	f.blank()
	f.add(text, style)
}

// clip keeps at most height rows, replacing the last kept row with an
// ellipsis, and truncates every row to width cells.
func (f *frame) clip(width, height int) {
	if height > 0 && len(f.rows) > height {
		kept := f.rows[:height-1:height-1]
		f.rows = append(kept, row{text: ellipsis})
	}
	if width <= 0 {
		return
	}
	for i := range f.rows {
		f.rows[i].text = clipText(f.rows[i].text, width)
	}
}

func (f *frame) String() string {
	lines := make([]string, len(f.rows))
	for i, r := range f.rows {
		if r.styled || r.style == nil || r.text == "" {
			lines[i] = r.text
			continue
		}
		lines[i] = r.style.Render(r.text)
	}
	return strings.Join(lines, "\n")
}

// clipText shortens text to at most width cells, ending in an ellipsis when
// anything was cut. ANSI sequences are preserved.
func clipText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
