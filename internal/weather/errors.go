package weather

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	MsgEmptyCity          = "Please enter a city name"
	MsgGeolocationMissing = "Geolocation is not supported by your browser"
	MsgLocationUnresolved = "Unable to retrieve your location. Please enable location permissions."
	MsgCityNotFound       = "City not found. Please check spelling."
	MsgInvalidAPIKey      = "Invalid API key. Please check your configuration."
)

var (
	ErrEmptyCity              = &ValidationError{Message: MsgEmptyCity}
	ErrGeolocationUnsupported = &CapabilityError{Message: MsgGeolocationMissing}
)

// ValidationError rejects input before anything reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CapabilityError means the host cannot do what was asked (no geolocation).
type CapabilityError struct {
	Message string
}

func (e *CapabilityError) Error() string { return e.Message }

// LocationResolutionError wraps a platform failure to determine the position.
// The cause is for logs only.
type LocationResolutionError struct {
	Cause error
}

func (e *LocationResolutionError) Error() string {
	if e.Cause == nil {
		return MsgLocationUnresolved
	}
	return MsgLocationUnresolved + ": " + e.Cause.Error()
}

func (e *LocationResolutionError) Unwrap() error { return e.Cause }

// HTTPStatusError is a non-2xx answer from the provider.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	switch e.StatusCode {
	case 404:
		return MsgCityNotFound
	case 401:
		return MsgInvalidAPIKey
	default:
		return fmt.Sprintf("Error: %d", e.StatusCode)
	}
}

// TransportError covers network failures and bodies that could not be decoded.
type TransportError struct {
	Op    string
	Cause error
}

// NewTransportError strips a *url.Error so the request URL, which carries the
// API credential, never ends up in a message.
func NewTransportError(op string, cause error) *TransportError {
	var urlErr *url.Error
	if errors.As(cause, &urlErr) {
		cause = urlErr.Err
	}
	return &TransportError{Op: op, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause == nil {
		return e.Op
	}
	return e.Op + ": " + e.Cause.Error()
}

func (e *TransportError) Unwrap() error { return e.Cause }

// UserMessage is the text the Error phase shows for err.
func UserMessage(err error) string {
	var (
		validationErr *ValidationError
		capabilityErr *CapabilityError
		locationErr   *LocationResolutionError
		statusErr     *HTTPStatusError
		transportErr  *TransportError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &capabilityErr):
		return capabilityErr.Message
	case errors.As(err, &locationErr):
		return MsgLocationUnresolved
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.As(err, &transportErr):
		return transportErr.Error()
	default:
		return err.Error()
	}
}

// Outcome names the error class for logs and the audit record.
func Outcome(err error) string {
	var (
		validationErr *ValidationError
		capabilityErr *CapabilityError
		locationErr   *LocationResolutionError
		statusErr     *HTTPStatusError
		transportErr  *TransportError
	)

	switch {
	case err == nil:
		return "success"
	case errors.As(err, &validationErr):
		return "validation_error"
	case errors.As(err, &capabilityErr):
		return "capability_error"
	case errors.As(err, &locationErr):
		return "location_error"
	case errors.As(err, &statusErr):
		return "http_status_error"
	case errors.As(err, &transportErr):
		return "transport_error"
	default:
		return "error"
	}
}

// StatusCode returns the provider HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
