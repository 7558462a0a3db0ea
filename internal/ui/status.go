package ui

import (
	"time"

	"github.com/atomicstack/search-menu/internal/backend"
)

const noticeTTL = 5 * time.Second

// status holds everything the views report around the menu: the action in
// flight, the last failure, a short-lived notice and watcher errors.
type status struct {
	pendingID    string
	pendingLabel string
	loading      bool

	errText string

	notice      string
	noticeUntil time.Time

	sources    map[backend.Kind]error
	lastFailed backend.Kind
}

var now = time.Now

func (s *status) begin(id, label string) {
	s.loading = true
	s.pendingID = id
	s.pendingLabel = label
	s.reset()
}

func (s *status) settle() {
	s.loading = false
	s.pendingID = ""
	s.pendingLabel = ""
}

// reset drops the error and the notice.
func (s *status) reset() {
	s.errText = ""
	s.clearNotice()
}

func (s *status) fail(err error) {
	s.errText = err.Error()
	s.clearNotice()
}

func (s *status) notify(msg string) {
	s.notice = msg
	s.noticeUntil = now().Add(noticeTTL)
}

func (s *status) clearNotice() {
	s.notice = ""
	s.noticeUntil = time.Time{}
}

// currentNotice returns the notice until it expires.
func (s *status) currentNotice() string {
	if s.notice != "" && !s.noticeUntil.IsZero() && now().After(s.noticeUntil) {
		s.clearNotice()
	}
	return s.notice
}

// record stores the outcome of the last fetch for kind.
func (s *status) record(kind backend.Kind, err error) {
	if s.sources == nil {
		s.sources = make(map[backend.Kind]error)
	}
	s.sources[kind] = err
	if err != nil {
		s.lastFailed = kind
	}
}

// backendIssue reports the most recent failure among sources that have not
// recovered yet.
func (s *status) backendIssue() (string, bool) {
	if err := s.sources[s.lastFailed]; err != nil {
		return err.Error(), true
	}
	for _, err := range s.sources {
		if err != nil {
			return err.Error(), true
		}
	}
	return "", false
}

// problem is the line shown under the menu: the last action error wins over
// watcher failures.
func (s *status) problem() string {
	if s.errText != "" {
		return "Error: " + s.errText
	}
	if msg, ok := s.backendIssue(); ok {
		return "Backend: " + msg
	}
	return ""
}
