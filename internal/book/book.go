package book

import (
	"errors"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrAlreadyExists is returned when adding a book whose id is taken.
var ErrAlreadyExists = errors.New("book already exists")

// Book represents a book entity.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publicationYear"`
}

// Sort is the title ordering requested for a listing.
type Sort string

const (
	SortNone Sort = ""
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// QueryOptions are the validated parameters for listing books.
// Build them with ParseQuery; RunQuery trusts them as given.
type QueryOptions struct {
	Search string
	Sort   Sort
	Page   int
	Limit  int
}

// PageResult is one page of a filtered and sorted listing.
type PageResult struct {
	Books       []Book `json:"books"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalBooks  int    `json:"totalBooks"`
}
