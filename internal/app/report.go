package app

import (
	"fmt"
	"io"

	"github.com/fnview/fnview/internal/lambda"
	"github.com/fnview/fnview/internal/logging/events"
)

// WriteReport emits the plain-text startup listing: a count line followed by
// one function name per line. The format is byte-stable for scripting
// consumers and is written once, before the interactive program takes over
// the terminal.
func WriteReport(w io.Writer, catalog lambda.Catalog) {
	fmt.Fprintf(w, "Found [%d] functions:\n", len(catalog))
	for _, fn := range catalog {
		fmt.Fprintln(w, fn.Name)
	}
	events.App.Report(len(catalog))
}
