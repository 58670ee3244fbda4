package github

import (
	"fmt"
	"net/http"
)

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassRateLimit represents quota rejections (403 with an
	// exhausted X-RateLimit-Remaining, or 429).
	ErrorClassRateLimit ErrorClass = "rate_limit"

	// ErrorClassNetwork represents transport-level errors.
	ErrorClassNetwork ErrorClass = "network"
)

// APIError is a non-success GitHub API response. Fetchers log it and
// stop early with their partial accumulation; it never escapes past them.
type APIError struct {
	StatusCode int
	ErrorClass ErrorClass
	Endpoint   string
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github %s error on %s: %v", e.ErrorClass, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("github %s error on %s (status %d): %s",
		e.ErrorClass, e.Endpoint, e.StatusCode, e.Body)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// classify categorizes a response (or transport error) for metrics and
// logging.
func classify(resp *http.Response, err error) ErrorClass {
	if err != nil {
		return ErrorClassNetwork
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrorClassRateLimit
	case resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		return ErrorClassRateLimit
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return ErrorClassClient
	case resp.StatusCode >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}
