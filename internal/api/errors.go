package api

import "errors"

var (
	// ErrUnavailable indicates the platform API is unreachable.
	ErrUnavailable = errors.New("platform api unreachable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("platform api request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("platform api retry attempts exhausted")
)
