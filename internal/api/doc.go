// Package api provides HTTP client functionality for communicating with the
// MailSniper API. It builds authenticated requests, hands them to an injected
// [Doer], and decodes the JSON responses.
//
// # Client Creation
//
// [NewClient] takes a [Config] with the API key, base URL and a [Doer]. The
// API key is sent as a bearer token in the Authorization header on every
// request, together with JSON Content-Type and Accept headers and the SDK
// User-Agent.
//
// # Responses
//
// A 2xx response is returned as a [Response] holding the top-level JSON object
// and the response headers, lower-cased with only their first value kept.
// A body that is not a JSON object yields a [ProtocolError], whatever the
// status code.
//
// # Error Handling
//
// Non-2xx responses become an [APIError] whose [Kind] is chosen by
// [BuildError] from the status code:
//
//   - 401: [KindAuthentication], matches [ErrUnauthorized].
//   - 400: [KindValidation], matches [ErrValidation].
//   - 429: [KindQuotaExceeded], matches [ErrQuotaExceeded].
//   - 5xx: [KindServer], matches [ErrServer].
//   - anything else: [KindAPI].
//
// Every APIError matches [ErrAPI]. Failures of the Doer itself are returned
// as a [NetworkError] wrapping the cause.
//
// Requests are never retried.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use provided its Doer is.
package api
