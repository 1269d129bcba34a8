package app

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight rejects a submission made while another one is Busy.
var ErrSubmissionInFlight = errors.New("an analysis is already in progress")

// ValidationError reports input that is empty after trimming.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return "please enter a valid URL"
}

// NetworkError reports a transport failure: DNS, refused connection, timeout
// or an aborted request.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RequestFailedError reports a non-2xx answer from the scanning service.
type RequestFailedError struct {
	StatusCode int
	Body       string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("analysis failed (status: %d). details: %s", e.StatusCode, e.Body)
}

// MalformedResponseError reports a 2xx answer whose body is not an analysis result.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from scanning service: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Kind names the error category for surfaces that need a stable tag.
func Kind(err error) string {
	var (
		ve *ValidationError
		ne *NetworkError
		re *RequestFailedError
		me *MalformedResponseError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return "validation"
	case errors.Is(err, ErrSubmissionInFlight):
		return "busy"
	case errors.As(err, &ne):
		return "network"
	case errors.As(err, &re):
		return "request_failed"
	case errors.As(err, &me):
		return "malformed_response"
	default:
		return "internal"
	}
}
