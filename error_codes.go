package mailsniper

// API error codes reported in the error_code field of error responses.
const (
	// Authentication & authorization
	ErrorCodeAuthenticationRequired = "authentication_required"
	ErrorCodeInvalidAPIKey          = "invalid_api_key"
	ErrorCodeAPIKeyFormatInvalid    = "api_key_format_invalid"
	ErrorCodeAccessDenied           = "access_denied"

	// Validation
	ErrorCodeInvalidEmailFormat = "invalid_email_format"
	ErrorCodeEmptyEmail         = "empty_email"
	ErrorCodeInvalidParameters  = "invalid_parameters"
	ErrorCodeBadRequest         = "bad_request"

	// Rate limiting & quota
	ErrorCodeQuotaExceeded          = "quota_exceeded"
	ErrorCodeRateLimitExceeded      = "rate_limit_exceeded"
	ErrorCodeInsufficientQuota      = "insufficient_quota"
	ErrorCodeQuotaConsumptionFailed = "quota_consumption_failed"

	// HTTP
	ErrorCodeEndpointNotFound = "endpoint_not_found"
	ErrorCodeMethodNotAllowed = "method_not_allowed"

	// System
	ErrorCodeInternalServerError = "internal_server_error"
	ErrorCodeServiceUnavailable  = "service_unavailable"

	// ErrorCodeUnknown is substituted when an error response has no code.
	ErrorCodeUnknown = "unknown_error"
)
