package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/backend"
	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/navigation"
	"github.com/atomicstack/search-menu/internal/store"
	"github.com/atomicstack/search-menu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	DBPath       string
	WorkspaceID  string
	Query        string
	PollInterval time.Duration
	OpenMenu     bool
	SavedHeader  string
	Types        []menu.TypeDefinition
}

type session struct {
	store    *store.Store
	watcher  *backend.Watcher
	recorder *navigation.Recorder
	model    *ui.Model
}

// newSession opens the store and wires the watcher and model. A query given
// on the command line becomes the stored active query; otherwise the stored
// one is used.
func newSession(ctx context.Context, cfg Config) (*session, error) {
	s, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	active := cfg.Query
	if active != "" {
		if err := s.SetActiveQuery(ctx, active); err != nil {
			s.Close()
			return nil, fmt.Errorf("set active query: %w", err)
		}
	} else if active, err = s.ActiveQuery(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("read active query: %w", err)
	}
	watcher := backend.NewWatcher(s, cfg.PollInterval, s.Path())
	recorder := navigation.NewRecorder()
	model := ui.NewModel(ui.Config{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Verbose:     cfg.Verbose,
		Watcher:     watcher,
		Store:       s,
		Navigator:   recorder,
		Types:       cfg.Types,
		WorkspaceID: cfg.WorkspaceID,
		SavedHeader: cfg.SavedHeader,
		OpenMenu:    cfg.OpenMenu,
		Query:       active,
	})
	return &session{store: s, watcher: watcher, recorder: recorder, model: model}, nil
}

func (s *session) close() error {
	s.watcher.Stop()
	s.watcher.Wait()
	return s.store.Close()
}

// Run bootstraps and executes the Bubble Tea program. The route chosen in
// the menu, if any, is written to out once the program exits.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(sess.model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if cerr := sess.close(); cerr != nil && err == nil {
		err = cerr
	}
	events.App.Exit(sess.recorder.Last())
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return err
	}
	return sess.recorder.Flush(out)
}
