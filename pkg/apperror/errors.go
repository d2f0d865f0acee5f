package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *AppError) Unwrap() error {
	return e.Err
}

// MobileErrorMessage is the user-visible text for a rejected mobile number
const MobileErrorMessage = "Invalid mobile number. Enter 10 digits."

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Page not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrTooManyRequest = &AppError{Code: http.StatusTooManyRequests, Message: "Too many requests. Please try again later."}
	ErrInvalidMobile  = &AppError{Code: http.StatusUnprocessableEntity, Message: MobileErrorMessage}
)

// NewPersistenceError wraps a storage failure. The cause is kept for logging
// but never shown to the user.
func NewPersistenceError(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Could not access customer records",
		Err:     err,
	}
}

// IsPersistenceError reports whether err came from the storage layer
func IsPersistenceError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusInternalServerError && appErr.Err != nil
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: ErrInternalServer.Message,
		Err:     err,
	}
}
