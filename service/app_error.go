package service

import (
	"errors"
	"fmt"
)

// Error codes carried in the "code" field of API error bodies.
const (
	// ErrInternalServerError: the instance store or another dependency failed; served as 500.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound: the instance store holds no live descriptor; served as 404, read as [] by the instance API.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter: a registration request or path parameter was rejected; served as 400.
	ErrBadParameter = "bad_parameter"
)

// AppError is a coded error that crosses from the store and converters to the HTTP error handler.
// Code and Message are rendered as {"error":{"code","message"}}.
type AppError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	// Inner stays in logs only.
	Inner error `json:"-"`
}

// NewAppError builds an AppError with an explicit code.
func NewAppError(code string, message string, inner error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// NewInternalServerError, NewEntityNotFoundError and NewBadParameterError return inner itself when it
// already is an AppError somewhere in its chain, so the first classification wins.
func NewInternalServerError(message string, inner error) *AppError {
	return newOrInner(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *AppError {
	return newOrInner(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *AppError {
	return newOrInner(ErrBadParameter, message, inner)
}

func newOrInner(code string, message string, inner error) *AppError {
	if appInner := ToAppError(inner); appInner != nil {
		return appInner
	}

	return NewAppError(code, message, inner)
}

func (e AppError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap returns Inner.
func (e AppError) Unwrap() error {
	return e.Inner
}

// ToAppError finds the AppError in err's chain; nil when there is none.
func ToAppError(err error) *AppError {
	var e *AppError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToAppErrorCode is the code of the AppError in err's chain, or "".
func ToAppErrorCode(err error) string {
	if appErr := ToAppError(err); appErr != nil {
		return appErr.Code
	}
	return ""
}

// IsAppError reports whether err carries the non-empty code.
func IsAppError(err error, code string) bool {
	return ToAppErrorCode(err) == code && code != ""
}

func IsInternalServerError(err error) bool {
	return IsAppError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsAppError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsAppError(err, ErrBadParameter)
}
