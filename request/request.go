package request

import (
	"bytes"
	"maps"
	"slices"
)

// DefaultScheme is used when a Request doesn't implement [Schemer].
const DefaultScheme = "https"

// QueryItem is a single name/value pair of a URL query string.
type QueryItem struct {
	Name  string
	Value string
}

// Request is the minimal description of an HTTP request. The optional
// members are picked up through [Schemer], [Methoder], [Headerer] and
// [Bodier]; see [Resolve] for the defaults.
type Request interface {
	Host() string
	Path() string
	QueryItems() []QueryItem
}

// Schemer overrides the default "https" scheme.
type Schemer interface {
	Scheme() string
}

// Methoder overrides the default GET method.
type Methoder interface {
	Method() Method
}

// Headerer supplies request headers.
type Headerer interface {
	Headers() map[string]string
}

// Bodier supplies a raw request body. A nil slice means no body.
type Bodier interface {
	Body() []byte
}

// Fields is the fully resolved form of a [Request], with every optional
// member filled in.
type Fields struct {
	Scheme  string            `json:"scheme" validate:"required"`
	Method  Method            `json:"method" validate:"required,oneof=PUT POST GET DELETE HEAD"`
	Host    string            `json:"host" validate:"required"`
	Path    string            `json:"path"`
	Query   []QueryItem       `json:"query"`
	Headers map[string]string `json:"headers"`
	Body    []byte            `json:"-"`
}

// Resolve snapshots r, applying defaults for every optional member r
// doesn't implement. Slices and maps are copied so later changes to r
// don't leak into an already built request.
func Resolve(r Request) Fields {
	f := Fields{
		Scheme: DefaultScheme,
		Method: MethodGet,
		Host:   r.Host(),
		Path:   r.Path(),
		Query:  slices.Clone(r.QueryItems()),
	}

	if s, ok := r.(Schemer); ok {
		f.Scheme = s.Scheme()
	}
	if m, ok := r.(Methoder); ok {
		f.Method = m.Method()
	}
	if h, ok := r.(Headerer); ok {
		f.Headers = maps.Clone(h.Headers())
	}
	if b, ok := r.(Bodier); ok {
		f.Body = bytes.Clone(b.Body())
	}

	return f
}
