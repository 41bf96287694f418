package auditlog

import (
	"errors"
	"net/http"

	"booklibrary/internal/book"
	"booklibrary/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	svc *Service
	log *zap.Logger
}

func NewHTTPHandler(svc *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /audit-logs", h.List)
	mux.HandleFunc("POST /audit-logs/loans", h.record(ActionLoan))
	mux.HandleFunc("POST /audit-logs/returns", h.record(ActionReturn))
}

// List handles GET /audit-logs
// @Summary List audit log entries
// @Tags audit-logs
// @Produce json
// @Success 200 {array} Entry
// @Failure 500 {object} httpx.ErrorResponse
// @Router /audit-logs [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		h.internalError(w, r, "list audit log", err)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	httpx.JSONSuccess(w, entries)
}

// record handles POST /audit-logs/loans and POST /audit-logs/returns
// @Summary Record a loan or a return
// @Tags audit-logs
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Book and borrower"
// @Success 201 {object} Entry
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /audit-logs/loans [post]
// @Router /audit-logs/returns [post]
func (h *HTTPHandler) record(action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ActionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if details := httpx.ValidateStruct(req); len(details) > 0 {
			httpx.JSONValidationError(w, "Invalid request body", details)
			return
		}

		entry, err := h.svc.Record(r.Context(), action, req)
		if err != nil {
			if errors.Is(err, book.ErrNotFound) {
				httpx.JSONError(w, http.StatusNotFound, "Book not found")
				return
			}
			h.internalError(w, r, "record audit entry", err)
			return
		}
		httpx.JSONSuccessCreated(w, entry)
	}
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.Error(msg,
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err),
	)
	httpx.JSONInternalError(w)
}
