package mailsniper

import (
	"errors"
	"fmt"

	"github.com/mailsniper/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidAPIKey is returned when the API key does not have the
	// ms_<8 hex>_<32 hex> format.
	ErrInvalidAPIKey = errors.New("invalid API key format")

	// ErrMissingTransport is returned when no HTTP client is provided.
	ErrMissingTransport = errors.New("HTTP client is required")

	// ErrMissingBaseURL is returned when the base URL is empty.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrTransport is returned when the HTTP client fails to perform a request.
	ErrTransport = errors.New("transport error")

	// ErrProtocol is returned when the response body is not a JSON object.
	ErrProtocol = errors.New("invalid JSON response")

	// ErrAPI matches every error returned for a non-2xx response.
	ErrAPI = errors.New("api error")

	// ErrUnauthorized is returned when the API key is rejected (401).
	ErrUnauthorized = errors.New("authentication failed")

	// ErrValidation is returned when the request is rejected as invalid (400).
	ErrValidation = errors.New("validation failed")

	// ErrQuotaExceeded is returned when the account quota is exhausted (429).
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrServer is returned for server-side failures (5xx).
	ErrServer = errors.New("server error")
)

// MailSniperError is implemented by all SDK errors.
type MailSniperError interface {
	error
	MailSniperError() // marker method
}

// ErrorKind discriminates the variants of APIError.
type ErrorKind = api.Kind

// Error kinds.
const (
	// KindAPI is any non-2xx response not covered by a more specific kind.
	KindAPI = api.KindAPI
	// KindAuthentication is a 401 response.
	KindAuthentication = api.KindAuthentication
	// KindValidation is a 400 response.
	KindValidation = api.KindValidation
	// KindQuotaExceeded is a 429 response.
	KindQuotaExceeded = api.KindQuotaExceeded
	// KindServer is a 5xx response.
	KindServer = api.KindServer
)

// APIError represents an error response from the MailSniper API.
//
// Kind is derived from the status code: 401 authentication, 400 validation,
// 429 quota exceeded, 5xx server, anything else generic.
type APIError struct {
	Kind       ErrorKind
	ErrorCode  string // server error code, "unknown_error" if absent
	Message    string // server message
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrorCode, e.Message)
}

// Code returns the HTTP status code.
func (e *APIError) Code() int {
	return e.StatusCode
}

// MailSniperError implements the MailSniperError interface.
func (e *APIError) MailSniperError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	switch e.Kind {
	case KindAuthentication:
		return target == ErrUnauthorized
	case KindValidation:
		return target == ErrValidation
	case KindQuotaExceeded:
		return target == ErrQuotaExceeded
	case KindServer:
		return target == ErrServer
	}
	return false
}

// ConfigurationError is returned by New when the client cannot be
// configured. It is detected locally and never reaches the network.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// MailSniperError implements the MailSniperError interface.
func (e *ConfigurationError) MailSniperError() {}

// TransportError represents a failure of the HTTP client.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP client error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// MailSniperError implements the MailSniperError interface.
func (e *TransportError) MailSniperError() {}

// ProtocolError indicates a response body that is not a JSON object.
type ProtocolError struct {
	StatusCode int
	Err        error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// MailSniperError implements the MailSniperError interface.
func (e *ProtocolError) MailSniperError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			ErrorCode:  apiErr.ErrorCode,
			Message:    apiErr.Message,
			StatusCode: apiErr.StatusCode,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var protoErr *api.ProtocolError
	if errors.As(err, &protoErr) {
		return &ProtocolError{
			StatusCode: protoErr.StatusCode,
			Err:        protoErr.Err,
		}
	}

	return err
}
