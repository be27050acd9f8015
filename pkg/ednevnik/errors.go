package ednevnik

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Login when the portal rejects the email/password pair.
var ErrInvalidCredentials = errors.New("Wrong email and/or password")

// ErrSessionExpired is the cause of an *ExtractionError when the portal served
// the login page instead of the requested one, call Login again.
var ErrSessionExpired = errors.New("session expired")

// LoginError is returned by Login for every failure other than rejected credentials.
type LoginError struct {
	Err error
}

func (e *LoginError) Error() string {
	return "Failed to login."
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// TransportError is a failed round trip, either the request itself failed
// or the portal answered with an error status.
type TransportError struct {
	Method string
	Path   string
	// Status is 0 when no response was received.
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExtractionError means a page did not have the expected shape, usually because
// the session expired or the portal markup changed. The message only names the
// page, the cause is kept for diagnostics.
type ExtractionError struct {
	Page string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Failed to fetch %s", e.Page)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// FetchError is what every Client.Fetch* operation fails with, Err is
// either a *TransportError or an *ExtractionError.
type FetchError struct {
	Page string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch %s", e.Page)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
