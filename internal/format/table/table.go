// Package table lays out plain-text columns for command output.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const (
	columnGap = "  "
	ruleRune  = "─"
)

// Format pads every cell to the widest entry of its column. Cells are
// measured in terminal cells, so styled or wide text lines up. Trailing
// padding is trimmed.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = pad(cell, widths[c], alignAt(alignments, c))
		}
		out = append(out, strings.TrimRight(strings.Join(cells, columnGap), " "))
	}
	return out
}

// WithHeader formats rows under header, separated by a rule as wide as each
// header cell.
func WithHeader(header []string, rows [][]string, alignments []Alignment) []string {
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat(ruleRune, ansi.StringWidth(h))
	}
	return Format(append([][]string{header, rule}, rows...), alignments)
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c == len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], ansi.StringWidth(cell))
		}
	}
	return widths
}

func alignAt(alignments []Alignment, col int) Alignment {
	if col < len(alignments) {
		return alignments[col]
	}
	return AlignLeft
}

func pad(cell string, width int, align Alignment) string {
	gap := width - ansi.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	fill := strings.Repeat(" ", gap)
	if align == AlignRight {
		return fill + cell
	}
	return cell + fill
}
