package lambda

import (
	"context"
	"fmt"
	"sort"

	"github.com/fnview/fnview/internal/logging/events"
)

// PageSize is the hard ceiling for ListFunctions results per request;
// the service caps larger values at 50 regardless of the configured size.
const PageSize = 50

// Function identifies a single Lambda function. The name is the identity and
// is assumed unique within one listing snapshot; duplicates returned by the
// API are kept as-is.
type Function struct {
	Name string
}

// Catalog is the complete collection of functions retrieved in one run,
// sorted ascending by name. It is built once and never mutated afterwards.
type Catalog []Function

// Names returns the catalog's function names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, fn := range c {
		names[i] = fn.Name
	}
	return names
}

// RetrievalError marks a failed page request. The whole listing aborts on the
// first failure; no partial catalog is ever produced.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("list lambda functions: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// FetchAll drains the paginated listing API into a single sorted catalog.
// Pages are requested sequentially with PageSize entries each; the loop
// terminates only when no continuation token is returned. A page with zero
// entries but a token keeps the loop going. There is no retry: any page
// failure aborts the whole fetch.
func FetchAll(ctx context.Context, lister PageLister) (Catalog, error) {
	var results Catalog
	var token *string
	for pageIndex := 0; ; pageIndex++ {
		page, err := lister.ListPage(ctx, PageSize, token)
		if err != nil {
			events.Fetch.Failed(err)
			return nil, &RetrievalError{Err: err}
		}
		results = append(results, page.Entries...)
		events.Fetch.Page(pageIndex, len(page.Entries), page.NextToken != nil)
		token = page.NextToken
		if token == nil {
			break
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	events.Fetch.Done(len(results))
	return results, nil
}
