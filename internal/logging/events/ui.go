package events

import "github.com/atomicstack/search-menu/internal/logging"

// UITracer records popover navigation.
type UITracer struct{}

// FilterTracer records edits to the filter line of a level.
type FilterTracer struct{}

// ActionTracer records the outcome of menu actions.
type ActionTracer struct{}

// CommandTracer follows requests through the command bus.
type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

type fields = map[string]interface{}

func (UITracer) MenuOpen(items int) {
	logging.Trace("menu.open", fields{"items": items})
}

func (UITracer) MenuClose(reason string) {
	logging.Trace("menu.close", fields{"reason": reason})
}

func (UITracer) MenuEnter(levelID, itemID, label, filter string) {
	logging.Trace("menu.enter", fields{"level": levelID, "item": itemID, "label": label, "filter": filter})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", fields{"level": levelID, "cursor": cursor})
}

func (UITracer) Overflow(itemID string) {
	logging.Trace("menu.overflow", fields{"item": itemID})
}

// Changed records an edit that altered the filter text.
func (FilterTracer) Changed(levelID, op, filter string) {
	logging.Trace("filter."+op, fields{"level": levelID, "filter": filter})
}

// Cursor records an edit that only moved the filter cursor.
func (FilterTracer) Cursor(levelID, op string, pos int) {
	logging.Trace("filter.cursor", fields{"level": levelID, "op": op, "cursor": pos})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", fields{"info": info})
}

func (ActionTracer) Error(err error) {
	if err != nil {
		logging.Trace("action.error", fields{"error": err.Error()})
	}
}

func (CommandTracer) Queue(id, label string) { traceCommand("queue", id, label, nil) }
func (CommandTracer) Skip(id, label string)  { traceCommand("skip", id, label, nil) }
func (CommandTracer) NoOp(id, label string)  { traceCommand("noop", id, label, nil) }

func (CommandTracer) Result(id, label, msgType string) {
	traceCommand("result", id, label, fields{"msg": msgType})
}

func traceCommand(stage, id, label string, extra fields) {
	payload := fields{"id": id, "label": label}
	for k, v := range extra {
		payload[k] = v
	}
	logging.Trace("command."+stage, payload)
}
