package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified confkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// SourceRead creates a new AppError for a file that could not be read or decoded.
func SourceRead(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSourceRead, Message: fmt.Sprintf("failed to read config source %s", path),
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// DecodeShape creates a new AppError for a decoded value that is not a record.
func DecodeShape(path string, got any) *AppError {
	kind := fmt.Sprintf("%T", got)
	return &AppError{
		Code: ErrCodeDecodeShape, Message: fmt.Sprintf("config source %s must decode to an object, got %s", path, kind),
		Details: map[string]any{"path": path, "got": kind},
	}
}

// ValidationFailed creates a new AppError wrapping the validator's error.
func ValidationFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeValidation, Message: "configuration does not satisfy the schema",
		Cause: cause,
	}
}

// InvalidSchema creates a new AppError for a schema that cannot be loaded into.
func InvalidSchema(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidSchema, Message: reason}
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
