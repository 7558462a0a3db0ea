package theme

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/search-menu/internal/search"
)

func TestGlyphKnownAndUnknown(t *testing.T) {
	if Glyph(search.IconBookmark) != "⚑" {
		t.Fatalf("unexpected bookmark glyph %q", Glyph(search.IconBookmark))
	}
	if Glyph(search.Icon("nope")) != " " {
		t.Fatalf("expected blank glyph for unknown icon")
	}
}

func TestIconRendersGlyph(t *testing.T) {
	rendered := Icon(search.IconCheckmark, Palette().SuccessFill)
	if ansi.Strip(rendered) != "✓" {
		t.Fatalf("unexpected rendered icon %q", rendered)
	}
	if ansi.Strip(Icon(search.IconPencil, "")) != "✎" {
		t.Fatalf("expected default fill to render glyph")
	}
}

func TestPaletteIsPopulated(t *testing.T) {
	p := Palette()
	if p.Icon == "" || p.SuccessFill == "" || p.Border == "" {
		t.Fatalf("palette has empty fills: %#v", p)
	}
	if Default().SelectedItem == nil || Default().Modal == nil {
		t.Fatalf("expected default styles to be populated")
	}
}
