package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/adamwoolhether/netreq/internal/validate"
)

// DecodeOption is a functional option for [Decode].
type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	useJSONNum bool
}

// UseNumber tells the decoder to use [json.Decoder.UseNumber],
// preserving number precision as [json.Number] instead of float64.
func UseNumber() DecodeOption {
	return func(opts *decodeOpts) {
		opts.useJSONNum = true
	}
}

// Decode parses data as a single JSON value into a T. Unknown fields are
// ignored and missing ones keep their zero value, unless T tags them
// `validate:"required"`, in which case the decode fails. The tags are
// checked on T itself, on the struct it points to, and on each element
// when T is a slice, array or map of structs.
//
// A top-level JSON null is an error for every T, as is trailing data
// after the value or a malformed validate tag on T.
func Decode[T any](data []byte, opts ...DecodeOption) (T, error) {
	var settings decodeOpts
	for _, opt := range opts {
		opt(&settings)
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		return zero, errors.New("decoding json: null top-level value")
	}

	var v T

	d := json.NewDecoder(bytes.NewReader(data))
	if settings.useJSONNum {
		d.UseNumber()
	}

	if err := d.Decode(&v); err != nil {
		var zero T
		return zero, fmt.Errorf("decoding json: %w", err)
	}

	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		var zero T
		return zero, errors.New("decoding json: unexpected data after top-level value")
	}

	if err := validate.Struct(v); err != nil {
		var zero T
		return zero, fmt.Errorf("validating %T: %w", v, err)
	}

	return v, nil
}
