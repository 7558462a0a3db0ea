package backend

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/atomicstack/search-menu/internal/search"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSavedSearches Kind = iota
	KindActiveQuery
)

func (k Kind) String() string {
	switch k {
	case KindSavedSearches:
		return "saved-searches"
	case KindActiveQuery:
		return "active-query"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Source is the data the watcher polls. *store.Store satisfies it.
type Source interface {
	SavedSearches(ctx context.Context) ([]search.SavedSearch, error)
	ActiveQuery(ctx context.Context) (string, error)
}

// Watcher polls the source at a fixed interval and publishes events. When a
// database path is given it also watches the containing directory and polls
// immediately after the database files change.
type Watcher struct {
	source   Source
	interval time.Duration
	dbPath   string

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	events chan Event
	kicks  []chan struct{}
	done   chan struct{}
}

// DefaultInterval is used when NewWatcher is given a non-positive interval.
const DefaultInterval = 2 * time.Second

// NewWatcher creates a backend watcher that polls source every interval.
func NewWatcher(source Source, interval time.Duration, dbPath string) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)
	w := &Watcher{
		source:   source,
		interval: interval,
		dbPath:   dbPath,
		ctx:      gctx,
		cancel:   cancel,
		group:    group,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}

	w.startSavedSearchPoller()
	w.startActiveQueryPoller()
	if dbPath != "" {
		w.startFileWatcher()
	}

	go func() {
		w.group.Wait()
		close(w.events)
		close(w.done)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks every poller to fetch again without waiting for the ticker.
func (w *Watcher) Refresh() {
	for _, kick := range w.kicks {
		select {
		case kick <- struct{}{}:
		default:
		}
	}
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all goroutines have exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	<-w.done
}

func (w *Watcher) newKick() chan struct{} {
	kick := make(chan struct{}, 1)
	w.kicks = append(w.kicks, kick)
	return kick
}

// minFetchGap spaces fetches of one kind so bursts of file events and
// refreshes collapse.
const minFetchGap = 250 * time.Millisecond

func newFetchLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(minFetchGap), 1)
}

func (w *Watcher) startSavedSearchPoller() {
	limiter := newFetchLimiter()
	kick := w.newKick()
	w.group.Go(func() error {
		w.poll(KindSavedSearches, kick, func(ctx context.Context) (interface{}, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return w.source.SavedSearches(ctx)
		})
		return nil
	})
}

func (w *Watcher) startActiveQueryPoller() {
	limiter := newFetchLimiter()
	kick := w.newKick()
	w.group.Go(func() error {
		w.poll(KindActiveQuery, kick, func(ctx context.Context) (interface{}, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return w.source.ActiveQuery(ctx)
		})
		return nil
	})
}

// startFileWatcher falls back to plain polling when the directory cannot be
// watched.
func (w *Watcher) startFileWatcher() {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	dir := filepath.Dir(w.dbPath)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return
	}
	base := filepath.Base(w.dbPath)
	w.group.Go(func() error {
		defer fsw.Close()
		for {
			select {
			case <-w.ctx.Done():
				return nil
			case event, ok := <-fsw.Events:
				if !ok {
					return nil
				}
				// WAL mode writes land in -wal and -shm siblings.
				if !strings.HasPrefix(filepath.Base(event.Name), base) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					w.Refresh()
				}
			case _, ok := <-fsw.Errors:
				if !ok {
					return nil
				}
			}
		}
	})
}

func (w *Watcher) poll(kind Kind, kick <-chan struct{}, fetch func(context.Context) (interface{}, error)) {
	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-kick:
			if !emit() {
				return
			}
		}
	}
}
