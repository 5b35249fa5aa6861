// Package client issues [request.Request] descriptors over [net/http] and
// delivers each outcome exactly once as a typed [Result].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//		client.WithLogger(logger),
//	)
//
// A Client holds one [http.Client] for its lifetime. It caches nothing
// and never correlates separate calls.
//
// # Fetching
//
// [Fetch] returns immediately with a [Future]; the call runs on its own
// goroutine:
//
//	type user struct {
//		ID   int    `json:"id" validate:"required"`
//		Name string `json:"name"`
//	}
//
//	f := client.Fetch[user](ctx, c, request.New("api.example.com", "/v1/users/1"))
//	u, err := f.Await(ctx)
//
// [Go] delivers the same [Result] to a callback instead.
//
// # Errors
//
// Failures are one of the [NetworkError] values. Anything that keeps a
// response body from arriving is [ErrCannotGetData]; a body that isn't
// valid JSON for the target type, or misses a field tagged
// `validate:"required"`, is [ErrCannotDecode]. HTTP status codes play no
// part: a 404 whose body decodes is a success. The underlying cause is
// logged and recorded on the trace span, not returned.
package client
