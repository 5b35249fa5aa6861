package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/adamwoolhether/netreq/internal/validate"
)

// ErrMalformed is wrapped by every error describing request components
// that can't be assembled into a valid URL or [*http.Request].
var ErrMalformed = errors.New("malformed request")

// URL composes the scheme, host, path and query items of r.
func URL(r Request) (*url.URL, error) {
	return Resolve(r).URL()
}

// URL composes the resolved scheme, host, path and query into a URL.
// Query items keep their order and are escaped with [url.QueryEscape].
// An empty query produces no '?'.
func (f Fields) URL() (*url.URL, error) {
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if f.Path != "" && !strings.HasPrefix(f.Path, "/") {
		return nil, fmt.Errorf("%w: path %q must begin with '/' when a host is set", ErrMalformed, f.Path)
	}

	endpoint := &url.URL{
		Scheme:   f.Scheme,
		Host:     f.Host,
		Path:     f.Path,
		RawQuery: encodeQuery(f.Query),
	}

	// url.URL will happily stringify components it can't parse back, so
	// the round trip is what proves the result is a usable URL.
	parsed, err := url.Parse(endpoint.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !strings.EqualFold(parsed.Scheme, f.Scheme) || parsed.Host != f.Host {
		return nil, fmt.Errorf("%w: scheme %q and host %q do not form a valid authority", ErrMalformed, f.Scheme, f.Host)
	}

	return endpoint, nil
}

// TryBuild assembles r into an [*http.Request] bound to ctx. Headers and
// body are attached as given: no Content-Type is inferred and the body
// is not transformed. Requests without a body have a nil Body.
func TryBuild(ctx context.Context, r Request) (*http.Request, error) {
	f := Resolve(r)

	u, err := f.URL()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if f.Body != nil {
		body = bytes.NewReader(f.Body)
	}

	req, err := http.NewRequestWithContext(ctx, f.Method.String(), u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: instantiating request: %w", ErrMalformed, err)
	}

	for k, v := range f.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// Build is like [TryBuild] but panics when r is malformed. A request
// whose components can't form a URL is a programming error, not a
// condition to branch on at runtime.
func Build(ctx context.Context, r Request) *http.Request {
	req, err := TryBuild(ctx, r)
	if err != nil {
		panic(fmt.Errorf("request: build: %w", err))
	}

	return req
}

func encodeQuery(items []QueryItem) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(item.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(item.Value))
	}

	return b.String()
}
