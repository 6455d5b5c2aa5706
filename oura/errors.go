package oura

import (
	"fmt"
	"sort"
	"strings"
)

// ArgumentError reports call-time input rejected before any network
// activity: an unsupported HTTP method, an empty endpoint, or an
// unbuildable request.
type ArgumentError struct {
	Message string
	Cause   error
}

func (e *ArgumentError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ArgumentError) Unwrap() error { return e.Cause }

// RequestError reports that the transport could not complete the round
// trip. The underlying cause is preserved via Unwrap but never replaces
// the classification.
type RequestError struct {
	Cause error
}

func (e *RequestError) Error() string {
	return "error making request: " + e.Cause.Error()
}

func (e *RequestError) Unwrap() error { return e.Cause }

// DecodeError reports a response body that could not be interpreted:
// invalid JSON at the HTTP level, a strict typed decode failure, or a
// decoded value missing required fields.
type DecodeError struct {
	Cause  error
	Fields map[string]string
}

func (e *DecodeError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "invalid payload: " + strings.Join(keys, ", ")
	}
	if e.Cause != nil {
		return "bad JSON in response: " + e.Cause.Error()
	}
	return "bad JSON in response"
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// APIError reports an HTTP status outside [200, 299].
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oura api: %d %s", e.StatusCode, e.Reason)
}

// DateRangeError reports a date window rejected before any request was
// sent. Start and End carry the raw inputs as supplied by the caller.
type DateRangeError struct {
	Start  string
	End    string
	Reason string
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("%s (start: %q, end: %q)", e.Reason, e.Start, e.End)
}
