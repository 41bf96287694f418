package httpx

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse is a plain informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONSuccess writes v with 200 OK.
func JSONSuccess(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// JSONSuccessCreated writes v with 201 Created.
func JSONSuccessCreated(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

// JSONError writes {"error": message} with the given status code.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

// JSONValidationError writes a 400 listing the offending fields.
func JSONValidationError(w http.ResponseWriter, message string, details []ErrorDetail) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}

// JSONInternalError hides the cause behind a generic message. Callers log
// the cause themselves.
func JSONInternalError(w http.ResponseWriter) {
	JSONError(w, http.StatusInternalServerError, "Internal server error")
}
