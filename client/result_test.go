package client

import (
	"errors"
	"testing"
)

func TestNetworkError_Strings(t *testing.T) {
	tests := map[NetworkError]struct {
		msg   string
		label string
	}{
		ErrBadURL:                  {"bad url", "bad_url"},
		ErrCannotGetData:           {"cannot get data", "cannot_get_data"},
		ErrNetworkConnectionFailed: {"network connection failed", "network_connection_failed"},
		ErrCannotDecode:            {"cannot decode", "cannot_decode"},
	}

	for ne, exp := range tests {
		if ne.Error() != exp.msg {
			t.Errorf("exp %q, got %q", exp.msg, ne.Error())
		}
		if ne.label() != exp.label {
			t.Errorf("exp label %q, got %q", exp.label, ne.label())
		}
	}

	if none.label() != "success" {
		t.Errorf("exp success label for none, got %q", none.label())
	}
}

func TestResult(t *testing.T) {
	ok := Success(5)
	if !ok.OK() || ok.Value() != 5 || ok.Err() != nil {
		t.Errorf("unexpected success result: ok=%v value=%d err=%v", ok.OK(), ok.Value(), ok.Err())
	}

	failed := Failure[int](ErrCannotDecode)
	v, err := failed.Unwrap()
	if failed.OK() || v != 0 {
		t.Errorf("unexpected failure result: ok=%v value=%d", failed.OK(), v)
	}
	if !errors.Is(err, ErrCannotDecode) {
		t.Errorf("exp ErrCannotDecode, got: %v", err)
	}
	if errors.Is(err, ErrCannotGetData) {
		t.Error("variants must be distinct")
	}
}

func TestResult_Zero(t *testing.T) {
	var r Result[int]

	if r.OK() {
		t.Error("exp zero Result not OK")
	}
	if !errors.Is(r.Err(), ErrNoResult) {
		t.Errorf("exp ErrNoResult, got: %v", r.Err())
	}

	var ne NetworkError
	if errors.As(r.Err(), &ne) {
		t.Errorf("exp no NetworkError from an unset Result, got %v", ne)
	}
}

func TestFailure_PanicsOnUndeclared(t *testing.T) {
	for _, ne := range []NetworkError{none, ErrCannotDecode + 1, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("exp panic for %d", int(ne))
				}
			}()
			Failure[string](ne)
		}()
	}
}

func TestFuture_CompleteReleasesWaiters(t *testing.T) {
	f := newFuture[string]()

	waiters := make(chan Result[string], 3)
	for range 3 {
		go func() { waiters <- f.Result() }()
	}

	f.complete(Success("done"))

	for range 3 {
		if res := <-waiters; res.Value() != "done" {
			t.Errorf("exp done, got %q", res.Value())
		}
	}

	select {
	case <-f.Done():
	default:
		t.Error("exp Done closed after complete")
	}
}
