// Package middleware provides the HTTP middleware wrapped around the lookup handler:
// request IDs, panic recovery and access logging through the global slog logger.
package middleware
