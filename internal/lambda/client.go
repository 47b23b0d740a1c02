package lambda

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
)

// Page is one bounded response chunk from the listing API, paired with an
// optional continuation token. A nil NextToken signals the end of the listing.
type Page struct {
	Entries   []Function
	NextToken *string
}

// PageLister issues a single bounded page request against the listing API.
// *Client implements it against AWS; tests substitute fakes.
type PageLister interface {
	ListPage(ctx context.Context, pageSize int32, token *string) (Page, error)
}

var _ PageLister = (*Client)(nil)

// Client wraps the AWS Lambda API for listing functions.
type Client struct {
	api *awslambda.Client
}

// NewClient builds a Client from a resolved AWS configuration.
func NewClient(cfg aws.Config) *Client {
	return &Client{api: awslambda.NewFromConfig(cfg)}
}

// ListPage requests one ListFunctions page. Entries without a function name
// are skipped; the continuation marker is passed through untouched.
func (c *Client) ListPage(ctx context.Context, pageSize int32, token *string) (Page, error) {
	input := &awslambda.ListFunctionsInput{
		MaxItems: aws.Int32(pageSize),
		Marker:   token,
	}
	out, err := c.api.ListFunctions(ctx, input)
	if err != nil {
		return Page{}, err
	}
	entries := make([]Function, 0, len(out.Functions))
	for _, fn := range out.Functions {
		if fn.FunctionName == nil {
			continue
		}
		entries = append(entries, Function{Name: *fn.FunctionName})
	}
	return Page{Entries: entries, NextToken: out.NextMarker}, nil
}
