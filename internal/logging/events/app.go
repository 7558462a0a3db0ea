package events

import "github.com/atomicstack/search-menu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload fields) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(route string) {
	logging.Trace("app.exit", fields{"route": route})
}

func (AppTracer) Backend(kind string, err error) {
	payload := fields{"kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.backend", payload)
}
