// Package common contains constants and small helpers shared by the client
// packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on GraphQL requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is prepended to tokens that do not already carry it.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"
)
