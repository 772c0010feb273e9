package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/usestring/wpjson-seven/pkg/client"
	"github.com/usestring/wpjson-seven/pkg/converter"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeRetrievalError = "RETRIEVAL_ERROR"
	ErrCodeTimeout        = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapError converts retrieval and conversion errors to coded errors.
// Errors that are already coded are returned unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return err
	}

	var apiErr *client.APIError
	var netErr net.Error
	switch {
	case errors.As(err, &apiErr):
		code := ErrCodeRetrievalError
		if apiErr.StatusCode == http.StatusNotFound {
			code = ErrCodeNotFound
		}
		coded = &CodedError{Code: code, Message: apiErr.Message, Cause: err}

	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		coded = &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}

	case errors.Is(err, converter.ErrNoRouteArgs):
		coded = &CodedError{Code: ErrCodeNotFound, Message: "no endpoint of the route accepts the method", Cause: err}

	case errors.Is(err, converter.ErrMalformedDocument):
		coded = &CodedError{Code: ErrCodeNotFound, Message: "route not found in discovery document", Cause: err}

	case errors.Is(err, converter.ErrEntityName), errors.Is(err, converter.ErrMaxDepth):
		coded = &CodedError{Code: ErrCodeInvalidInput, Message: "route cannot be converted", Cause: err}

	default:
		var retrievalErr *client.RetrievalError
		if errors.As(err, &retrievalErr) {
			coded = &CodedError{Code: ErrCodeRetrievalError, Message: "could not load discovery document", Cause: err}
		} else {
			coded = &CodedError{Code: ErrCodeInvalidInput, Message: err.Error()}
		}
	}

	slog.Warn("tool error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
