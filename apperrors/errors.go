// Package apperrors defines the error taxonomy the services return for
// expected business conditions. Handlers map kinds to HTTP statuses instead
// of inspecting error strings.
package apperrors

import "errors"

type Kind string

const (
	KindUnauthorized       Kind = "unauthorized"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindValidation         Kind = "validation"
	KindStorageUnavailable Kind = "storage_unavailable"
)

// Error is a business error with a classification. Err, when set, holds the
// underlying infrastructure failure and is never serialized to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Storage wraps a collaborator failure so callers see a stable kind rather
// than a raw driver error.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorageUnavailable, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors report
// KindStorageUnavailable, the fail-safe default for infrastructure faults.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorageUnavailable
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
