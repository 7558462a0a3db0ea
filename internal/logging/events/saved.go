package events

import "github.com/atomicstack/search-menu/internal/logging"

type SavedTracer struct{}

type savedReason string

const (
	SavedReasonEscape    savedReason = "escape"
	SavedReasonEmpty     savedReason = "empty"
	SavedReasonUnchanged savedReason = "unchanged"
)

var Saved = SavedTracer{}

func (SavedTracer) Refresh(count int) {
	logging.Trace("saved.refresh", fields{"count": count})
}

func (SavedTracer) Apply(hash int64, query string) {
	logging.Trace("saved.apply", fields{"hash": hash, "query": query})
}

func (SavedTracer) RenamePrompt(hash int64, title string) {
	logging.Trace("saved.rename.prompt", fields{"hash": hash, "title": title})
}

func (SavedTracer) SubmitRename(hash int64, title string) {
	logging.Trace("saved.rename.submit", fields{"hash": hash, "title": title})
}

func (SavedTracer) CancelRename(hash int64, reason savedReason) {
	logging.Trace("saved.rename.cancel", fields{"hash": hash, "reason": string(reason)})
}

func (SavedTracer) Rename(hash int64, title string) {
	logging.Trace("saved.rename", fields{"hash": hash, "title": title})
}

func (SavedTracer) DeletePrompt(hash int64, title string) {
	logging.Trace("saved.delete.prompt", fields{"hash": hash, "title": title})
}

func (SavedTracer) CancelDelete(hash int64) {
	logging.Trace("saved.delete.cancel", fields{"hash": hash})
}

func (SavedTracer) Delete(hash int64) {
	logging.Trace("saved.delete", fields{"hash": hash})
}

func (SavedTracer) Add(hash int64, title string) {
	logging.Trace("saved.add", fields{"hash": hash, "title": title})
}
