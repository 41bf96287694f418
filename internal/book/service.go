package book

import (
	"context"
	"fmt"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the page of books selected by opts.
func (s *Service) List(ctx context.Context, opts QueryOptions) (PageResult, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return PageResult{}, fmt.Errorf("list books: %w", err)
	}
	return RunQuery(all, opts), nil
}

// Get returns a book by its id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}
