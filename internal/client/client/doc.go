// Package client talks to the account GraphQL API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the services: Profile,
// Login and Register. GraphQLClient implements it with one HTTP POST per
// operation, a bearer Authorization header when a token is supplied and an
// X-Request-ID header for server-side correlation.
//
// # Error Handling
//
// Failures are classified so callers can decide with errors.Is / errors.As:
//
//   - ErrUnavailable: the request never got an HTTP response.
//   - *StatusError: non-2xx; errors.Is(err, ErrUnauthorized) holds for 400/401/403.
//   - *APIError: the body carried a GraphQL errors list.
//   - ErrEmptyPayload: 2xx without the requested field.
//   - ErrMalformedResponse: 2xx whose body is not the expected JSON.
//
// GraphQLClient is safe for concurrent use and never retries.
package client
