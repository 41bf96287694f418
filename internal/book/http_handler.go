package book

import (
	"errors"
	"net/http"

	"booklibrary/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// RegisterRoutes mounts the books endpoints.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{id}", h.Get)
}

// List handles GET /books
// @Summary Retrieve a list of books
// @Description Get a paginated list of books with optional search and sorting
// @Tags books
// @Produce json
// @Param search query string false "Search term matched against title and author"
// @Param sort query string false "Sort order for books by title" Enums(asc, desc) default(asc)
// @Param page query int false "Page number" minimum(1) default(1)
// @Param limit query int false "Books per page" minimum(1) default(10)
// @Success 200 {object} PageResult
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseQuery(r.URL.Query())
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.JSONError(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.internalError(w, r, "parse book query", err)
		return
	}

	page, err := h.service.List(r.Context(), opts)
	if err != nil {
		h.internalError(w, r, "list books", err)
		return
	}
	httpx.JSONSuccess(w, page)
}

// Get handles GET /books/{id}
// @Summary Get a book by ID
// @Tags books
// @Produce json
// @Param id path string true "The ID of the book"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Book not found")
			return
		}
		h.internalError(w, r, "get book", err)
		return
	}
	httpx.JSONSuccess(w, b)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.Error(msg,
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err),
	)
	httpx.JSONInternalError(w)
}
