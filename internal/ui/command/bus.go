// Package command runs menu actions off the Bubble Tea update loop.
package command

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/menu"
)

// Request names the item whose action should run.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// Bus hands out commands for requests and tracks which are still running.
type Bus struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func New() *Bus {
	return &Bus{running: make(map[string]struct{})}
}

// Execute returns the command running req, or nil while a request with the
// same ID is still running. Actions that produce nothing answer with an
// empty menu.ActionResult so the caller can leave its pending state, and a
// panicking action answers with its error.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	if !b.claim(req.ID) {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	events.Command.Queue(req.ID, req.Label)
	return func() (msg tea.Msg) {
		defer b.release(req.ID)
		defer func() {
			if r := recover(); r != nil {
				msg = menu.ActionResult{Err: fmt.Errorf("%s failed: %v", req.Label, r)}
			}
		}()
		if msg = run(ctx, req); msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return menu.ActionResult{}
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Running reports whether the request with id has not finished yet.
func (b *Bus) Running(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.running[id]
	return ok
}

func run(ctx menu.Context, req Request) tea.Msg {
	if req.Handler == nil {
		return nil
	}
	cmd := req.Handler(ctx, req.Item)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func (b *Bus) claim(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.running[id]; busy {
		return false
	}
	b.running[id] = struct{}{}
	return true
}

func (b *Bus) release(id string) {
	b.mu.Lock()
	delete(b.running, id)
	b.mu.Unlock()
}
