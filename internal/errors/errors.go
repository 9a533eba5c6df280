package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAlreadyExists is returned when a name is already registered for a role.
	ErrAlreadyExists = errors.New("name already registered")
	// ErrInvalidCredentials is returned when the name or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect name or password")
	// ErrUnauthenticated is returned for any token that does not resolve to an existing principal of the required role.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrNotFound is returned when a referenced assignment does not exist.
	ErrNotFound = errors.New("assignment not found")
	// ErrPasswordTooLong is returned for passwords longer than bcrypt accepts.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// Unauthenticated is the single response rendered for every auth-layer failure.
func Unauthenticated() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are unwrapped.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return Unauthenticated()
	case errors.Is(err, ErrPasswordTooLong):
		return NewHTTPError(http.StatusBadRequest, ErrPasswordTooLong.Error(), "PASSWORD_TOO_LONG")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
