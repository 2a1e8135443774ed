package feed

import (
	"fmt"
	"net/http"
)

// Failure kinds reported by FetchError.
const (
	FailureTimeout    = "timeout"
	FailureConnection = "connection"
	FailureHTTPStatus = "http_status"
)

// FetchError describes why downloading a feed URL failed after all allowed
// attempts.
type FetchError struct {
	URL      string
	Kind     string // one of the Failure* constants
	Status   int    // HTTP status code, set when Kind is FailureHTTPStatus
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureHTTPStatus:
		return fmt.Sprintf("fetch %s: HTTP %d %s after %d attempt(s)",
			e.URL, e.Status, http.StatusText(e.Status), e.Attempts)
	case FailureTimeout:
		return fmt.Sprintf("fetch %s: timed out after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
	default:
		return fmt.Sprintf("fetch %s: connection failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Transient reports whether a later retry could plausibly succeed.
// Timeouts, connection failures, 429 and 5xx responses are transient;
// every other HTTP status is permanent.
func (e *FetchError) Transient() bool {
	if e.Kind != FailureHTTPStatus {
		return true
	}
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// ParseError describes a feed document the parser could not make sense of.
// Snippet holds the beginning of the offending input for diagnostics.
type ParseError struct {
	Source  string
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse %s feed: %v (input: %q)", e.Source, e.Err, e.Snippet)
	}
	return fmt.Sprintf("parse feed: %v (input: %q)", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }
