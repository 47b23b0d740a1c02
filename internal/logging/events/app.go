package events

import "github.com/fnview/fnview/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Report(count int) {
	logging.Trace("app.report", map[string]interface{}{"functions": count})
}
