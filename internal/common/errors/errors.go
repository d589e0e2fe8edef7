// Package errors provides standardized error handling for the activities API.
// Every failure the service reports to a client is one of the codes below;
// there is no internal error category because no registry operation can fail
// for reasons other than bad input.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotRegistered    ErrorCode = "NOT_REGISTERED"
	ErrCodeEmailRequired    ErrorCode = "EMAIL_REQUIRED"
)

// APIError is a structured client-input error. Detail is the human-readable
// string surfaced to the caller; Status is the HTTP status the transport
// layer answers with.
type APIError struct {
	Code      ErrorCode `json:"code"`
	Detail    string    `json:"detail"`
	Status    int       `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Detail)
}

// ==========================
// Error Constructors
// ==========================

// NewActivityNotFoundError reports an unknown activity name.
func NewActivityNotFoundError() *APIError {
	return &APIError{
		Code:      ErrCodeActivityNotFound,
		Detail:    "Activity not found",
		Status:    http.StatusNotFound,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySignedUpError reports a duplicate signup for one activity.
func NewAlreadySignedUpError(email string) *APIError {
	return &APIError{
		Code:      ErrCodeAlreadySignedUp,
		Detail:    fmt.Sprintf("%s is already signed up", email),
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError reports an unregister for an email that is not on
// the activity's roster.
func NewNotRegisteredError(email string) *APIError {
	return &APIError{
		Code:      ErrCodeNotRegistered,
		Detail:    fmt.Sprintf("%s is not registered", email),
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailRequiredError reports a missing email query parameter.
func NewEmailRequiredError() *APIError {
	return &APIError{
		Code:      ErrCodeEmailRequired,
		Detail:    "email is required",
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}
