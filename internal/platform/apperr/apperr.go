// Copyright (c) 2026 Wavecrate. All rights reserved.

/*
Package apperr defines the centralized error handling framework for Wavecrate.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Catalog errors: Dedicated constructors for identifier and integrity failures
    (invalid tag, letter exhaustion, dangling reference, duplicate key).
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the Wavecrate API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "INVALID_TAG").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Album") // Returns "Album not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Catalog Errors

// InvalidTag creates a 400 [AppError] for a malformed catalog tag string.
//
// A well-formed tag is a 2-character genre abbreviation, followed by the
// artist number, optionally followed by a single album letter ("RK12b").
func InvalidTag(tag string) *AppError {
	return &AppError{
		Code:       "INVALID_TAG",
		Message:    fmt.Sprintf("Malformed catalog tag %q", tag),
		HTTPStatus: http.StatusBadRequest,
	}
}

// GenreNotFound creates a 404 [AppError] for a missing genre ancestor.
func GenreNotFound(abbreviation string) *AppError {
	return &AppError{
		Code:       "GENRE_NOT_FOUND",
		Message:    fmt.Sprintf("No genre with abbreviation %q", abbreviation),
		HTTPStatus: http.StatusNotFound,
	}
}

// ArtistNotFound creates a 404 [AppError] for a missing artist ancestor,
// e.g. when an album is filed under an artist tag that does not exist.
func ArtistNotFound(artistTag string) *AppError {
	return &AppError{
		Code:       "ARTIST_NOT_FOUND",
		Message:    fmt.Sprintf("No artist with tag %s", artistTag),
		HTTPStatus: http.StatusNotFound,
	}
}

// DuplicateKey creates a 409 [AppError] for an insert that collided with an
// existing composite primary key.
func DuplicateKey(resource string) *AppError {
	return &AppError{
		Code:       "DUPLICATE_KEY",
		Message:    resource + " already exists",
		HTTPStatus: http.StatusConflict,
	}
}

// LetterSpaceExhausted creates a 409 [AppError] returned when all 26 album
// letters under an artist are taken.
func LetterSpaceExhausted(artistTag string) *AppError {
	return &AppError{
		Code:       "LETTER_SPACE_EXHAUSTED",
		Message:    fmt.Sprintf("No free album letter remains for artist %s", artistTag),
		HTTPStatus: http.StatusConflict,
	}
}

// DanglingReference creates a 500 [AppError] for a mandatory relationship
// that resolved to nothing. Nothing in the storage layer enforces these
// references structurally, so a miss is a data-integrity violation and is
// surfaced rather than silently tolerated.
func DanglingReference(from, to string) *AppError {
	return &AppError{
		Code:       "DANGLING_REFERENCE",
		Message:    fmt.Sprintf("%s references a missing %s", from, to),
		HTTPStatus: http.StatusInternalServerError,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ServiceUnavailable creates a 503 [AppError] for maintenance mode.
func ServiceUnavailable(msg string) *AppError {
	return &AppError{
		Code:       "SERVICE_UNAVAILABLE",
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries the given machine-readable code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
