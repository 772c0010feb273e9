package client

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a site answers with an empty document.
var ErrNoData = errors.New("no JSON data found")

// ErrNotJSON is returned when a site answers with a non-JSON document.
var ErrNotJSON = errors.New("response is not JSON")

// APIError represents an error response from the WordPress REST API.
type APIError struct {
	StatusCode int
	Code       string // WordPress error code, e.g. "rest_no_route"
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("WordPress API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("WordPress API error %d: %s", e.StatusCode, e.Message)
}

// errorResponse is the JSON structure of WP_Error responses.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RetrievalError reports a failure to obtain a discovery document.
type RetrievalError struct {
	Source string
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieving %s: %v", e.Source, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
