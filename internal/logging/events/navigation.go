package events

import "github.com/atomicstack/search-menu/internal/logging"

type NavigationTracer struct{}

var Navigation = NavigationTracer{}

func (NavigationTracer) Navigate(route string) {
	logging.Trace("navigation.navigate", fields{"route": route})
}

func (NavigationTracer) ClearFilters() {
	logging.Trace("navigation.clear-filters", nil)
}

func (NavigationTracer) AdvancedFilters(keys []string) {
	logging.Trace("navigation.advanced-filters", fields{"fields": keys})
}
