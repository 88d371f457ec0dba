/*
Package errs provides custom error types and application-level error code constants.

This file defines the CustomError struct, which implements the standard Go error interface
and includes a business code, a taxonomy kind, a user-friendly message, and the HTTP status
(when the error originated from a server response) for unified error reporting.
*/
package errs

import (
	"errors"
	"fmt"
	"strings"

	"huecas/internal/pkg/logx"
)

// Kind classifies an error into the client's error taxonomy. It drives how a
// failure is surfaced: inline auth message, field-scoped validation hint,
// reconnecting indicator, or empty-state view.
type Kind string

const (
	// KindAuthentication covers rejected credentials, expired reset codes, and
	// missing/stale bearer tokens. The server message is surfaced verbatim.
	KindAuthentication Kind = "authentication"

	// KindValidation covers client-side, pre-submission input failures. These
	// are field-scoped and never sent to the server.
	KindValidation Kind = "validation"

	// KindTransport covers network and socket failures.
	KindTransport Kind = "transport"

	// KindNotFound covers missing remote records (e.g., a deleted restaurant).
	KindNotFound Kind = "not_found"

	// KindUnknown covers everything that could not be classified.
	KindUnknown Kind = "unknown"
)

// CustomError is the custom error structure used throughout the application.
// It wraps the Go error interface, adding a business code and taxonomy kind.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Kind is the taxonomy classification of this error.
	Kind Kind

	// Message is the user-friendly error description. When the error mirrors a
	// server response, this carries the server-provided text verbatim.
	Message string

	// Status is the HTTP status code of the originating response, or 0 when
	// the error never reached the server (transport, validation).
	Status int
}

// Error implements the standard Go error interface. It returns a formatted
// error string containing the error code, kind, and message.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (%s): %s", e.Code, e.Kind, e.Message)
}

// NewError constructs and returns a new *CustomError instance based on a predefined error code.
// The optional details parameter allows for formatting arguments (printf-style) to be supplied
// for the error message. If an unknown code is provided, it defaults to returning ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &CustomError{
			Code:    unknownErr.Code,
			Kind:    unknownErr.Kind,
			Message: unknownErr.Message,
		}
	}

	customErr := templateErr

	if code == ErrUnknown && len(details) > 0 {
		if originalErr, ok := details[0].(error); ok {
			logx.Error(
				originalErr,
				"Handling ErrUnknown with underlying error",
			)
		}
	} else if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
			)
		}
	}

	return &customErr
}

// NewServerError constructs a *CustomError for a failed server response.
// The serverMessage, when present, is preserved verbatim; otherwise the
// template message for the code is used. The HTTP status is recorded as-is.
func NewServerError(code int, status int, serverMessage string) *CustomError {
	customErr := NewError(code)
	customErr.Status = status

	if serverMessage != "" {
		customErr.Message = serverMessage
	}

	return customErr
}

// KindOf extracts the taxonomy Kind from an error. Non-CustomError values
// report KindUnknown.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindUnknown
}

// MessageOf normalizes any error into a user-displayable message string:
// the CustomError message when available, the plain error text otherwise,
// and a generic fallback when err is nil-messaged.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}

	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return errorMap[ErrUnknown].Message
}
