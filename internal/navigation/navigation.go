// Package navigation turns menu commands into routes and hands them to the
// host. The default Recorder keeps the last route so the program can print
// it on exit.
package navigation

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/query"
)

const (
	// SearchPath is the route of the search results page.
	SearchPath = "search"
	// AdvancedFiltersRoute opens the advanced filter editor.
	AdvancedFiltersRoute = "search/filters"
)

// ErrEmptyRoute is returned when navigating nowhere.
var ErrEmptyRoute = errors.New("navigation: empty route")

// Navigator moves the host to route.
type Navigator interface {
	Navigate(route string) error
}

// SearchRoute returns the route showing results for the canonical form of raw.
func SearchRoute(raw string) string {
	values := url.Values{}
	values.Set("q", query.Parse(raw).Canonical())
	return SearchPath + "?" + values.Encode()
}

// QueryFromRoute extracts the query from a search route.
func QueryFromRoute(route string) (string, bool) {
	path, rawQuery, found := strings.Cut(route, "?")
	if path != SearchPath || !found {
		return "", false
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", false
	}
	q := values.Get("q")
	return q, q != ""
}

// Recorder is a Navigator that remembers every route it was sent.
type Recorder struct {
	mu     sync.Mutex
	routes []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Navigate(route string) error {
	route = strings.TrimSpace(route)
	if route == "" {
		return ErrEmptyRoute
	}
	r.mu.Lock()
	r.routes = append(r.routes, route)
	r.mu.Unlock()
	events.Navigation.Navigate(route)
	return nil
}

// Last returns the most recent route, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.routes) == 0 {
		return ""
	}
	return r.routes[len(r.routes)-1]
}

// Routes returns every route in the order it was recorded.
func (r *Recorder) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

// Flush writes the last route to w followed by a newline. Nothing is
// written when no navigation happened.
func (r *Recorder) Flush(w io.Writer) error {
	last := r.Last()
	if last == "" {
		return nil
	}
	if _, err := fmt.Fprintln(w, last); err != nil {
		return fmt.Errorf("write route: %w", err)
	}
	return nil
}
