package system

import (
	"net/http"

	"booklibrary/internal/httpx"
)

// ReadinessCheck reports whether the service can take traffic.
type ReadinessCheck func() bool

// HTTPHandler serves the root greeting, probes and metrics.
type HTTPHandler struct {
	ready ReadinessCheck
}

func NewHTTPHandler(ready ReadinessCheck) *HTTPHandler {
	return &HTTPHandler{ready: ready}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
	mux.Handle("GET /metrics", httpx.MetricsHandler())
}

func (h *HTTPHandler) Root(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, httpx.MessageResponse{Message: "Hello from Book Library API!"})
}

func (h *HTTPHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *HTTPHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil && !h.ready() {
		http.Error(w, "catalog not loaded", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
