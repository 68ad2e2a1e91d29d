package github

import (
	"fmt"
	"time"
)

// GitHubError is returned for upstream failures that are not otherwise classified:
// transport errors, undecodable bodies, and non-2xx statuses other than 401/403/404/429.
type GitHubError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GitHubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *GitHubError) Unwrap() error {
	return e.Err
}

// RateLimitError represents when we hit GitHub's rate limits
type RateLimitError struct {
	StatusCode int
	ResetTime  time.Time
	Limit      int
	Remaining  int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("GitHub API rate limit exceeded (status %d). Reset at %v. Limit: %d, Remaining: %d",
		e.StatusCode, e.ResetTime, e.Limit, e.Remaining)
}

// UnauthorizedError represents a rejected or insufficient credential
type UnauthorizedError struct {
	StatusCode int
	Message    string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("GitHub API unauthorized (status %d): %s", e.StatusCode, e.Message)
}

// ValidationError represents invalid input to GitHub client methods
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Value)
}

// NotFoundError represents a resource that does not exist upstream
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found on GitHub: %s", e.Path)
}

// NewGitHubError creates a new GitHubError with the given status code and message
func NewGitHubError(statusCode int, message string, err error) error {
	return &GitHubError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// NewRateLimitError creates a new RateLimitError
func NewRateLimitError(statusCode int, info RateLimitInfo) error {
	return &RateLimitError{
		StatusCode: statusCode,
		ResetTime:  info.ResetTime,
		Limit:      info.Limit,
		Remaining:  info.Remaining,
	}
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(statusCode int, message string) error {
	return &UnauthorizedError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value string) error {
	return &ValidationError{
		Field: field,
		Value: value,
	}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(path string) error {
	return &NotFoundError{Path: path}
}
