package events

import "github.com/fnview/fnview/internal/logging"

type FetchTracer struct{}

var Fetch = FetchTracer{}

func (FetchTracer) Page(pageIndex, entries int, hasMore bool) {
	logging.Trace("fetch.page", map[string]interface{}{
		"page":    pageIndex,
		"entries": entries,
		"more":    hasMore,
	})
}

func (FetchTracer) Done(total int) {
	logging.Trace("fetch.done", map[string]interface{}{"total": total})
}

func (FetchTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("fetch.error", map[string]interface{}{"error": err.Error()})
}
