package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrAPI matches every error built from a non-2xx response.
	ErrAPI = errors.New("api error")
	// ErrUnauthorized indicates the API key was rejected (401).
	ErrUnauthorized = errors.New("authentication failed")
	// ErrValidation indicates the request was rejected as invalid (400).
	ErrValidation = errors.New("validation failed")
	// ErrQuotaExceeded indicates the account quota is exhausted (429).
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrServer indicates a server-side failure (5xx).
	ErrServer = errors.New("server error")
	// ErrInvalidJSON indicates the response body was not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON response")
)

// Default values substituted when an error body omits its fields.
const (
	DefaultErrorCode    = "unknown_error"
	DefaultErrorMessage = "An unknown error occurred"
)

// Kind discriminates the variants of APIError.
type Kind int

const (
	// KindAPI is any non-2xx status without a more specific kind.
	KindAPI Kind = iota
	// KindAuthentication is a 401 response.
	KindAuthentication
	// KindValidation is a 400 response.
	KindValidation
	// KindQuotaExceeded is a 429 response.
	KindQuotaExceeded
	// KindServer is a 5xx response.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindServer:
		return "server"
	default:
		return "api"
	}
}

// KindForStatus returns the error kind for a non-2xx HTTP status code.
func KindForStatus(statusCode int) Kind {
	switch {
	case statusCode == 401:
		return KindAuthentication
	case statusCode == 400:
		return KindValidation
	case statusCode == 429:
		return KindQuotaExceeded
	case statusCode >= 500:
		return KindServer
	default:
		return KindAPI
	}
}

// APIError represents an error response from the MailSniper API.
type APIError struct {
	Kind       Kind
	ErrorCode  string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrorCode, e.Message)
}

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

// BuildError maps a non-2xx status and its decoded body to an APIError.
// The mapping depends on the status code alone; error_code and message are
// carried through, with defaults when absent or not strings.
func BuildError(statusCode int, body map[string]any) *APIError {
	errorCode := DefaultErrorCode
	if v, ok := body["error_code"].(string); ok {
		errorCode = v
	}
	message := DefaultErrorMessage
	if v, ok := body["message"].(string); ok {
		message = v
	}

	return &APIError{
		Kind:       KindForStatus(statusCode),
		ErrorCode:  errorCode,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("HTTP client error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError represents a response whose body could not be parsed.
type ProtocolError struct {
	StatusCode int
	Err        error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrInvalidJSON
}
