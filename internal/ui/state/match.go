package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
)

// FilterItems keeps the items whose label fuzzily contains filter. Section
// headers never match on their own; the saved section header is kept ahead
// of its first surviving saved search.
func FilterItems(items []menu.Item, filter string) []menu.Item {
	needle := strings.TrimSpace(filter)
	if needle == "" {
		return cloneItems(items)
	}
	out := make([]menu.Item, 0, len(items))
	var header *menu.Item
	for i := range items {
		item := items[i]
		if item.Entry.Kind == search.KindHeader {
			header = &items[i]
			continue
		}
		if !fuzzy.MatchNormalizedFold(needle, item.Label) {
			continue
		}
		if header != nil && item.Entry.Kind == search.KindSaved {
			out = append(out, *header)
			header = nil
		}
		out = append(out, item)
	}
	return out
}

// Match tiers, best first. Fuzzy matches add their edit distance.
const (
	matchExact = iota
	matchPrefix
	matchContains
	matchFuzzy
)

// BestMatchIndex picks the item that best fits filter: an exact label wins,
// then a prefix, then a substring, then the closest fuzzy match. Ties go to
// the earlier item. Without any match it returns the first selectable item,
// and -1 when there is none.
func BestMatchIndex(items []menu.Item, filter string) int {
	needle := strings.ToLower(strings.TrimSpace(filter))
	first, best, bestScore := -1, -1, 0
	for i, item := range items {
		if item.Entry.Kind == search.KindHeader {
			continue
		}
		if first < 0 {
			first = i
		}
		if needle == "" {
			break
		}
		score, ok := matchScore(needle, item.Label)
		if ok && (best < 0 || score < bestScore) {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return first
	}
	return best
}

func matchScore(needle, label string) (int, bool) {
	lower := strings.ToLower(label)
	switch {
	case lower == needle:
		return matchExact, true
	case strings.HasPrefix(lower, needle):
		return matchPrefix, true
	case strings.Contains(lower, needle):
		return matchContains, true
	}
	if distance := fuzzy.RankMatchNormalizedFold(needle, label); distance >= 0 {
		return matchFuzzy + distance, true
	}
	return 0, false
}
