package client

import (
	"errors"
	"fmt"
)

// NetworkError classifies why a fetch failed. It is a closed set: a
// failed [Result] always carries one of the declared values.
type NetworkError int

const (
	none NetworkError = iota

	// ErrBadURL is reserved. Malformed descriptors panic in
	// [request.Build] before a fetch starts, so it is never delivered.
	ErrBadURL

	// ErrCannotGetData means no usable body arrived: a transport error,
	// a cancelled or timed out call, a failed body read, or an empty body.
	ErrCannotGetData

	// ErrNetworkConnectionFailed is reserved; connection failures are
	// reported as ErrCannotGetData.
	ErrNetworkConnectionFailed

	// ErrCannotDecode means the body arrived but did not decode into the
	// target type.
	ErrCannotDecode
)

func (e NetworkError) Error() string {
	switch e {
	case ErrBadURL:
		return "bad url"
	case ErrCannotGetData:
		return "cannot get data"
	case ErrNetworkConnectionFailed:
		return "network connection failed"
	case ErrCannotDecode:
		return "cannot decode"
	default:
		return fmt.Sprintf("network error(%d)", int(e))
	}
}

// label is the metrics and log value for an outcome.
func (e NetworkError) label() string {
	switch e {
	case none:
		return "success"
	case ErrBadURL:
		return "bad_url"
	case ErrCannotGetData:
		return "cannot_get_data"
	case ErrNetworkConnectionFailed:
		return "network_connection_failed"
	case ErrCannotDecode:
		return "cannot_decode"
	default:
		return "unknown"
	}
}

var (
	errNoResponse = errors.New("no response")
	errEmptyBody  = errors.New("empty response body")
)

// decodeFn consumes a fully read response body.
type decodeFn func(data []byte) error
