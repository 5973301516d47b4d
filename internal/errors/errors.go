package errors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeTransport       = "TRANSPORT_ERROR"
	ErrCodeAPI             = "API_ERROR"
	ErrCodeDecode          = "DECODE_ERROR"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeNotFound        = "NOT_FOUND"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, 0)
}

// TransportError covers failures before any HTTP status exists: DNS,
// connection refused, timeouts.
func TransportError(message string) *AppError {
	return NewAppError(ErrCodeTransport, message, 0)
}

// APIError carries the server's message for a non-2xx response.
func APIError(statusCode int, message string) *AppError {
	code := ErrCodeAPI
	if statusCode == http.StatusNotFound {
		code = ErrCodeNotFound
	}

	return NewAppError(code, message, statusCode)
}

func DecodeError(message string) *AppError {
	return NewAppError(ErrCodeDecode, message, 0)
}

func UnauthenticatedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthenticated, message, http.StatusUnauthorized)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// IsUnauthenticated reports whether err is the invalid-token signal the
// session layer reacts to: either an explicit UNAUTHENTICATED error or an
// API response with a 401/403 status.
func IsUnauthenticated(err error) bool {
	appErr, ok := IsAppError(err)
	if !ok {
		return false
	}

	if appErr.Code == ErrCodeUnauthenticated {
		return true
	}

	return appErr.StatusCode == http.StatusUnauthorized || appErr.StatusCode == http.StatusForbidden
}

// IsNotFound is used by the cart layer to treat a repeated remove as a no-op.
func IsNotFound(err error) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == ErrCodeNotFound
}
