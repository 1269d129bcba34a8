package webclient

import "context"

// WebClient executes HTTP requests against the scanning service.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	// PostJSON marshals v and POSTs it with a JSON content type.
	PostJSON(ctx context.Context, url string, v any) (*Response, error)

	Close() error
}
