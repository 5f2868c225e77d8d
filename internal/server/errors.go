// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrResumeNotFound indicates the resume does not exist or belongs to
// another user
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrResumeNotOptimized indicates a download was requested before a
// successful optimization run
type ErrResumeNotOptimized struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotOptimized) Error() string {
	return fmt.Sprintf("resume has no optimized text yet: %s", e.ResumeID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrResumeNotFound:
		return http.StatusNotFound
	case *ErrResumeNotOptimized:
		return http.StatusConflict
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
