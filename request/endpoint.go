package request

import "maps"

// Endpoint is a ready-made [Request] implementing every optional member.
// Unset members report the same defaults [Resolve] would apply.
type Endpoint struct {
	scheme  string
	method  Method
	host    string
	path    string
	query   []QueryItem
	headers map[string]string
	body    []byte
}

// Option configures an [Endpoint] created with [New].
type Option func(*Endpoint)

// New returns an Endpoint for host and path.
func New(host, path string, opts ...Option) Endpoint {
	ep := Endpoint{
		host: host,
		path: path,
	}
	for _, opt := range opts {
		opt(&ep)
	}

	return ep
}

// WithScheme overrides the default "https" scheme.
func WithScheme(scheme string) Option {
	return func(ep *Endpoint) {
		ep.scheme = scheme
	}
}

// WithMethod overrides the default GET method.
func WithMethod(m Method) Option {
	return func(ep *Endpoint) {
		ep.method = m
	}
}

// WithQuery appends query items, keeping their order.
func WithQuery(items ...QueryItem) Option {
	return func(ep *Endpoint) {
		ep.query = append(ep.query, items...)
	}
}

// WithHeader sets a single header, replacing any previous value for name.
func WithHeader(name, value string) Option {
	return func(ep *Endpoint) {
		if ep.headers == nil {
			ep.headers = make(map[string]string)
		}
		ep.headers[name] = value
	}
}

// WithHeaders merges headers into the Endpoint's header set.
func WithHeaders(headers map[string]string) Option {
	return func(ep *Endpoint) {
		if ep.headers == nil {
			ep.headers = make(map[string]string, len(headers))
		}
		maps.Copy(ep.headers, headers)
	}
}

// WithBody attaches a raw body, sent verbatim.
func WithBody(body []byte) Option {
	return func(ep *Endpoint) {
		ep.body = body
	}
}

func (ep Endpoint) Host() string            { return ep.host }
func (ep Endpoint) Path() string            { return ep.path }
func (ep Endpoint) QueryItems() []QueryItem { return ep.query }
func (ep Endpoint) Headers() map[string]string {
	return ep.headers
}
func (ep Endpoint) Body() []byte { return ep.body }

func (ep Endpoint) Scheme() string {
	if ep.scheme == "" {
		return DefaultScheme
	}
	return ep.scheme
}

func (ep Endpoint) Method() Method {
	if ep.method == "" {
		return MethodGet
	}
	return ep.method
}
