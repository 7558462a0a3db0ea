package search

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func drawInput(t *rapid.T) Input {
	entryCount := rapid.IntRange(0, 6).Draw(t, "entries")
	titles := make([]string, entryCount)
	for i := range titles {
		titles[i] = fmt.Sprintf("type-%d", i)
	}
	savedCount := rapid.IntRange(0, 5).Draw(t, "saved")
	saved := make([]SavedSearch, savedCount)
	for i := range saved {
		saved[i] = SavedSearch{
			Hash:  int64(i + 1),
			Title: fmt.Sprintf("saved-%d", i),
			PendingAction: rapid.SampledFrom([]PendingAction{
				PendingNone, PendingUpdate, PendingDelete,
			}).Draw(t, "pending"),
		}
	}
	override := ""
	if rapid.Bool().Draw(t, "hasOverride") {
		override = rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "override")
	}
	return Input{
		Entries:       testEntries(titles...),
		ActiveIndex:   rapid.IntRange(-1, entryCount+1).Draw(t, "activeIndex"),
		OverrideTitle: override,
		ActiveHash:    int64(rapid.IntRange(0, savedCount+2).Draw(t, "activeHash")),
		Saved:         saved,
		Palette:       testPalette,
	}
}

func TestPropertyBaseGroupSelection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawInput(t)
		menu := Assemble(in)
		base := selectedTexts(menu.Items, KindType)
		switch {
		case in.OverrideTitle != "":
			if len(base) != 0 {
				t.Fatalf("override set but base items selected: %v", base)
			}
		case in.ActiveIndex >= 0 && in.ActiveIndex < len(in.Entries):
			if len(base) != 1 || base[0] != in.Entries[in.ActiveIndex].Title {
				t.Fatalf("expected only %q selected, got %v", in.Entries[in.ActiveIndex].Title, base)
			}
		default:
			if len(base) != 0 {
				t.Fatalf("out of range index selected %v", base)
			}
		}
		if groups := selectedTexts(menu.Items, KindType, KindSynthetic); len(groups) > 1 {
			t.Fatalf("more than one selected item in base group: %v", groups)
		}
		if saved := selectedTexts(menu.Items, KindSaved); len(saved) > 1 {
			t.Fatalf("more than one selected saved item: %v", saved)
		}
	})
}

func TestPropertyOrderAndSuppression(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawInput(t)
		menu := Assemble(in)
		_, hasCurrent := FindCurrent(in.Saved, in.ActiveHash)

		last := KindType
		synthetic := 0
		for _, item := range menu.Items {
			if item.Kind < last {
				t.Fatalf("items out of order: %v after %v", item.Kind, last)
			}
			last = item.Kind
			if item.Kind == KindSynthetic {
				synthetic++
			}
		}
		wantSynthetic := 0
		if in.OverrideTitle != "" && !hasCurrent {
			wantSynthetic = 1
		}
		if synthetic != wantSynthetic {
			t.Fatalf("expected %d synthetic items, got %d", wantSynthetic, synthetic)
		}
		wantLen := len(in.Entries) + wantSynthetic
		if len(in.Saved) > 0 {
			wantLen += 1 + len(in.Saved)
		}
		if len(menu.Items) != wantLen {
			t.Fatalf("expected %d items, got %d", wantLen, len(menu.Items))
		}
	})
}

func TestPropertyMatcher(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawInput(t)
		got, ok := FindCurrent(in.Saved, in.ActiveHash)
		want := in.ActiveHash >= 1 && in.ActiveHash <= int64(len(in.Saved))
		if ok != want {
			t.Fatalf("hash %d: expected found=%v, got %v", in.ActiveHash, want, ok)
		}
		if ok && got.Hash != in.ActiveHash {
			t.Fatalf("expected hash %d, got %d", in.ActiveHash, got.Hash)
		}
	})
}

func TestPropertyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawInput(t)
		if diff := cmp.Diff(Assemble(in), Assemble(in)); diff != "" {
			t.Fatalf("assemble is not idempotent:\n%s", diff)
		}
	})
}
