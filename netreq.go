// Package netreq exposes the client builder and a shorthand for one-off
// typed fetches.
package netreq

import (
	"context"
	"slices"

	"github.com/adamwoolhether/netreq/client"
	"github.com/adamwoolhether/netreq/request"
)

// NewClient instantiates a new *Client with the provided options.
// If not specified, a fresh http.Client on http.DefaultTransport is used.
func NewClient(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}

// Get issues a GET to host and path on c and waits for the decoded T.
// The method is always GET, whatever opts set.
func Get[T any](ctx context.Context, c *client.Client, host, path string, opts ...request.Option) (T, error) {
	opts = append(slices.Clone(opts), request.WithMethod(request.MethodGet))
	return client.Fetch[T](ctx, c, request.New(host, path, opts...)).Await(ctx)
}
