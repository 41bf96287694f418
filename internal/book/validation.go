package book

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a malformed query parameter. Message is returned
// to clients verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrInvalidPage  = &ValidationError{Field: "page", Message: "Invalid page number. It must be a positive integer."}
	ErrInvalidLimit = &ValidationError{Field: "limit", Message: "Invalid limit number. It must be a positive integer."}
	ErrInvalidSort  = &ValidationError{Field: "sort", Message: "Invalid sort value. Allowed values are 'asc' or 'desc'."}
)

var validate = validator.New()

// ValidatePagination checks that page and limit are positive integers.
// NaN stands for input that did not parse as a number. The page check runs
// first.
func ValidatePagination(page, limit float64) error {
	if !isPositiveInt(page) {
		return ErrInvalidPage
	}
	if !isPositiveInt(limit) {
		return ErrInvalidLimit
	}
	return nil
}

// ValidateSort accepts "asc" or "desc" in any letter case.
func ValidateSort(sort string) error {
	if err := validate.Var(strings.ToLower(sort), "required,oneof=asc desc"); err != nil {
		return ErrInvalidSort
	}
	return nil
}

func isPositiveInt(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v > 0 && v == math.Trunc(v)
}
