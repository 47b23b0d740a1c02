package events

import "github.com/fnview/fnview/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Cursor(cursor int, selected bool) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "selected": selected})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Quit() {
	logging.Trace("ui.quit", nil)
}
