package httpx

import "net/http"

// RouteRegistrar is implemented by every resource that exposes HTTP routes.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// NewRouter registers every resource on a fresh ServeMux.
func NewRouter(registrars ...RouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()
	for _, reg := range registrars {
		reg.RegisterRoutes(mux)
	}
	return mux
}

// Chain applies middleware so that the first one listed runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
