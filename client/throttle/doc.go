// Package throttle provides an [http.RoundTripper] that rate-limits
// outbound HTTP requests using a token-bucket algorithm from
// [golang.org/x/time/rate].
//
// # Usage
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		throttle.Config{RPS: 10, Burst: 5},
//		http.DefaultTransport,
//		func() *zap.Logger { return logger },
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When the bucket is empty, a request waits for its reserved token. If
// the request context ends first the token is returned and the request
// fails with [ErrWaitingFailed].
package throttle
