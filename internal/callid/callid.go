// Package callid tags a context with the identifier of a single fetch,
// so transport layers can correlate their logs with the client's.
package callid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a child context carrying a freshly generated call ID.
func New(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, ctxKey{}, id), id
}

// From returns the call ID stored in ctx, or "" when there is none.
func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
