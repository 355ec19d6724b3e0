// Package api provides HTTP client functionality for communicating
// with the PassWallet API. It handles authentication, request and
// response serialization, and error classification.
//
// Every operation funnels through a single executor that sets HTTP
// Basic authentication (app key as username, empty password), the
// Accept and User-Agent headers, and TLS verification, then maps the
// response onto the error taxonomy:
//
//   - 422 → [ValidationError] with per-field detail
//   - 401 → [APIError] matching [ErrUnauthorized], body ignored
//   - other non-2xx → [APIError] with the envelope message
//   - transport failures → [NetworkError]
//
// Redirects are never followed; a Location response is returned to the
// caller as-is. The client performs no retries.
//
// The [Client] type is safe for concurrent use.
package api
