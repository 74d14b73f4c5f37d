package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenIsNotAccess     = errors.New("token is not an access token")
	ErrTokenIsNotRefresh    = errors.New("token is not a refresh token")

	// Authorization
	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header format")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	// Context
	ErrUserNotFoundInContext = errors.New("user identity not found in request context")

	// Common
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

// statusOf maps sentinel errors to HTTP status codes for ErrorResponse.
var statusOf = map[error]int{
	ErrInvalidSigningMethod:  http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrTokenExpired:          http.StatusUnauthorized,
	ErrTokenIsNotAccess:      http.StatusUnauthorized,
	ErrTokenIsNotRefresh:     http.StatusUnauthorized,
	ErrEmptyAuthHeader:       http.StatusUnauthorized,
	ErrInvalidAuthHeader:     http.StatusUnauthorized,
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrTooManyAttempts:       http.StatusTooManyRequests,
	ErrUserNotFoundInContext: http.StatusUnauthorized,
	ErrNotFound:              http.StatusNotFound,
	ErrBadRequest:            http.StatusBadRequest,
}

type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

// StatusCode resolves the HTTP status for any error produced by the service
// layer. Unknown errors fall through to 500.
func StatusCode(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	for sentinel, code := range statusOf {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}
