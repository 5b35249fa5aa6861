// Package request describes an HTTP request declaratively and assembles
// it into an [*http.Request].
//
// # Describing a Request
//
// Any type with Host, Path and QueryItems methods is a [Request]. The
// remaining members are optional: implement [Schemer], [Methoder],
// [Headerer] or [Bodier] only when the defaults ("https", GET, no
// headers, no body) don't fit.
//
//	type user struct{ id string }
//
//	func (user) Host() string                { return "api.example.com" }
//	func (u user) Path() string              { return "/v1/users/" + u.id }
//	func (user) QueryItems() []request.QueryItem { return nil }
//
// For one-off calls [New] returns an [Endpoint] configured with options:
//
//	ep := request.New("api.example.com", "/v1/search",
//		request.WithQuery(request.QueryItem{Name: "q", Value: "go"}),
//	)
//
// # Building
//
// [Build] turns a Request into an [*http.Request]. Malformed components
// (an empty host, a relative path, a scheme or host that can't form a
// URL) are programmer errors and make Build panic. [TryBuild] reports the
// same condition as an error wrapping [ErrMalformed].
package request
