package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"1", "Travel", "type:expense"},
		{"22", "Meals", "type:chat"},
	}, []Alignment{AlignRight, AlignLeft})
	want := []string{
		" 1  Travel  type:expense",
		"22  Meals   type:chat",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestFormatIgnoresEscapesWhenMeasuring(t *testing.T) {
	got := Format([][]string{
		{"\x1b[1mab\x1b[0m", "x"},
		{"abcd", "y"},
	}, nil)
	if got[0] != "\x1b[1mab\x1b[0m    x" {
		t.Fatalf("unexpected padding %q", got[0])
	}
}

func TestWithHeaderAddsRule(t *testing.T) {
	got := WithHeader([]string{"KEY", "VALUE"}, [][]string{{"merchant", "Acme"}}, nil)
	want := []string{
		"KEY       VALUE",
		"───       ─────",
		"merchant  Acme",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
