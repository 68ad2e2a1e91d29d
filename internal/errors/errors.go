package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Kamar-Folarin/github-signals/internal/github"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrNotFound     ErrorType = "NOT_FOUND"
	ErrRateLimit    ErrorType = "RATE_LIMIT"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
	ErrInternal     ErrorType = "INTERNAL"
	ErrUnauthorized ErrorType = "UNAUTHORIZED"
	ErrUpstream     ErrorType = "UPSTREAM"
)

// AppError represents an application error
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
	Timestamp  time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}

// FromUpstream converts a GitHub transport error into an AppError.
// Errors that are already AppErrors are returned unchanged.
func FromUpstream(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var notFound *github.NotFoundError
	var unauthorized *github.UnauthorizedError
	var rateLimit *github.RateLimitError
	var validation *github.ValidationError
	var ghErr *github.GitHubError

	switch {
	case errors.As(err, &notFound):
		e := New(ErrNotFound, "not found on GitHub", err)
		e.StatusCode = http.StatusNotFound
		return e
	case errors.As(err, &unauthorized):
		e := New(ErrUnauthorized, "invalid token or insufficient permissions", err)
		e.StatusCode = unauthorized.StatusCode
		return e
	case errors.As(err, &rateLimit):
		e := New(ErrRateLimit, "GitHub rate limit reached", err)
		e.StatusCode = rateLimit.StatusCode
		return e
	case errors.As(err, &validation):
		return New(ErrInvalidInput, validation.Error(), err)
	case errors.As(err, &ghErr):
		e := New(ErrUpstream, ghErr.Message, err)
		e.StatusCode = ghErr.StatusCode
		return e
	default:
		return NewInternalError("internal error", err)
	}
}

// HTTPStatus returns the response status code for err
func HTTPStatus(err error) int {
	appErr := FromUpstream(err)
	if appErr == nil {
		return http.StatusOK
	}

	switch appErr.Type {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidInput:
		return http.StatusBadRequest
	case ErrUnauthorized:
		if appErr.StatusCode >= 400 {
			return appErr.StatusCode
		}
		return http.StatusUnauthorized
	case ErrRateLimit:
		if appErr.StatusCode >= 400 {
			return appErr.StatusCode
		}
		return http.StatusTooManyRequests
	case ErrUpstream:
		if appErr.StatusCode >= 400 {
			return appErr.StatusCode
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return typeOf(err) == ErrNotFound
}

// IsRateLimit checks if the error is a rate limit error
func IsRateLimit(err error) bool {
	return typeOf(err) == ErrRateLimit
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return typeOf(err) == ErrInvalidInput
}

func typeOf(err error) ErrorType {
	if appErr := FromUpstream(err); appErr != nil {
		return appErr.Type
	}
	return ""
}
