package apperror

import (
	"errors"
	"fmt"
)

// Machine-checkable error codes surfaced to API clients.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidMeasure    = "INVALID_MEASUREMENT"
	CodeImmutableField    = "IMMUTABLE_FIELD"
	CodePrecondition      = "PRECONDITION_FAILED"
	CodeValidation        = "VALIDATION_ERROR"
	CodeDuplicate         = "DUPLICATE_ENTRY"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL"
)

// Error carries a stable code, an HTTP status, and a human message.
type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func NotFound(entity string) *Error {
	return New(CodeNotFound, 404, entity+" not found")
}

func InsufficientStock(quantity int, name string) *Error {
	return New(CodeInsufficientStock, 400, fmt.Sprintf("%d units of '%s' are not available in stock", quantity, name))
}

func InvalidMeasurement(message string) *Error {
	return New(CodeInvalidMeasure, 400, message)
}

func ImmutableField(field string) *Error {
	return New(CodeImmutableField, 400, field+" cannot be modified")
}

func PreconditionFailed(message string) *Error {
	return New(CodePrecondition, 400, message)
}

func Validation(message string) *Error {
	return New(CodeValidation, 400, message)
}

func Duplicate(message string) *Error {
	return New(CodeDuplicate, 409, message)
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, 401, message)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, 403, message)
}

// From unwraps err into an *Error, or wraps it as a generic internal error
// so that store-specific details never reach the client.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(CodeInternal, 500, "Internal Server Error")
}

// Is reports whether err is an application error with the given code.
func Is(err error, code string) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
