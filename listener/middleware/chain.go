package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler so that the first middleware is the outermost one.
func Chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

// Default returns the middleware stack used by lookup listeners:
// request ID, access logging and panic recovery, outermost first.
func Default() []Middleware {
	return []Middleware{RequestID(), Logging(), Recovery()}
}
