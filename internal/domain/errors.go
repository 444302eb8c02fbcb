package domain

import "fmt"

// FetchError reports a failed page retrieval: network error, timeout or a
// non-2xx response. Callers treat it as "skip and continue".
type FetchError struct {
	URL    string
	Status int // 0 when the request never produced a response
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports malformed HTML or unexpected page structure. Like
// FetchError it is caught at the smallest enclosing scope.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
