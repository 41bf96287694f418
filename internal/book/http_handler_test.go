package book

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestMux(t *testing.T, repo Repository) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewHTTPHandler(NewService(repo), zaptest.NewLogger(t)).RegisterRoutes(mux)
	return mux
}

func serve(mux http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) PageResult {
	t.Helper()
	var page PageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	return page
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	mux := newTestMux(t, mockRepo)

	testBook := Book{ID: "1", Title: "Test", Author: "Someone", PublicationYear: 2000}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().All(gomock.Any()).Return([]Book{testBook}, nil)

		w := serve(mux, "/books")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, PageResult{Books: []Book{testBook}, CurrentPage: 1, TotalPages: 1, TotalBooks: 1}, decodePage(t, w))
	})

	t.Run("empty result encodes an array", func(t *testing.T) {
		mockRepo.EXPECT().All(gomock.Any()).Return(nil, nil)

		w := serve(mux, "/books")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"books":[],"currentPage":1,"totalPages":0,"totalBooks":0}`, w.Body.String())
	})

	t.Run("validation error skips the repository", func(t *testing.T) {
		w := serve(mux, "/books?page=0")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrInvalidPage.Message, decodeError(t, w))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().All(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := serve(mux, "/books")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w))
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	mux := newTestMux(t, mockRepo)

	testBook := Book{ID: "123", Title: "Test", Author: "Someone", PublicationYear: 2000}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "123").Return(testBook, nil)

		w := serve(mux, "/books/123")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"123","title":"Test","author":"Someone","publicationYear":2000}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "123").Return(Book{}, ErrNotFound)

		w := serve(mux, "/books/123")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", decodeError(t, w))
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "123").Return(Book{}, context.Canceled)

		w := serve(mux, "/books/123")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w))
	})
}

func TestHTTPHandler_EndToEnd(t *testing.T) {
	repo, err := NewMemoryRepo(testBooks(t))
	require.NoError(t, err)
	mux := newTestMux(t, repo)

	t.Run("defaults", func(t *testing.T) {
		w := serve(mux, "/books")
		require.Equal(t, http.StatusOK, w.Code)

		page := decodePage(t, w)
		assert.Len(t, page.Books, 10)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 10, page.TotalBooks)
	})

	t.Run("search the ascending", func(t *testing.T) {
		w := serve(mux, "/books?search=the&sort=asc&page=1&limit=10")
		require.Equal(t, http.StatusOK, w.Code)

		page := decodePage(t, w)
		assert.Equal(t, []string{"7", "4", "5", "8"}, ids(page.Books))
		assert.Equal(t, 4, page.TotalBooks)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.CurrentPage)
		for _, b := range page.Books {
			assert.True(t, containsFold(b.Title, "the") || containsFold(b.Author, "the"), b.Title)
		}
	})

	t.Run("second page of three", func(t *testing.T) {
		w := serve(mux, "/books?page=2&limit=3")
		require.Equal(t, http.StatusOK, w.Code)

		page := decodePage(t, w)
		// Indices 3-5 of the title-ascending listing.
		assert.Equal(t, []string{"3", "7", "4"}, ids(page.Books))
		assert.Equal(t, 4, page.TotalPages)
		assert.Equal(t, 10, page.TotalBooks)
		assert.Equal(t, 2, page.CurrentPage)
	})

	t.Run("search and paging cases", func(t *testing.T) {
		tests := []struct {
			query     string
			wantPages int
			wantTotal int
			wantPage  int
		}{
			{"search=i-am-a-invalid-keyword&sort=asc&page=1&limit=2", 0, 0, 1},
			{"search=the&sort=asc&page=1&limit=10", 1, 4, 1},
			{"search=&sort=desc&page=2&limit=2", 5, 10, 2},
		}
		for _, tt := range tests {
			w := serve(mux, "/books?"+tt.query)
			require.Equal(t, http.StatusOK, w.Code, tt.query)

			page := decodePage(t, w)
			assert.Equal(t, tt.wantPages, page.TotalPages, tt.query)
			assert.Equal(t, tt.wantTotal, page.TotalBooks, tt.query)
			assert.Equal(t, tt.wantPage, page.CurrentPage, tt.query)
		}
	})

	t.Run("invalid parameters", func(t *testing.T) {
		tests := []struct {
			query     string
			wantError string
		}{
			{"sort=invalid", "Invalid sort value. Allowed values are 'asc' or 'desc'."},
			{"page=0", "Invalid page number. It must be a positive integer."},
			{"limit=0", "Invalid limit number. It must be a positive integer."},
			{"page=abc", "Invalid page number. It must be a positive integer."},
			{"limit=abc", "Invalid limit number. It must be a positive integer."},
		}
		for _, tt := range tests {
			w := serve(mux, "/books?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code, tt.query)
			assert.Equal(t, tt.wantError, decodeError(t, w), tt.query)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		w := serve(mux, "/books/8")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"8","title":"The Lord of the Rings","author":"J.R.R. Tolkien","publicationYear":1954}`, w.Body.String())

		w = serve(mux, "/books/does-not-exist")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", decodeError(t, w))
	})
}
