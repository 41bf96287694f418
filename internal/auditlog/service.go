package auditlog

import (
	"context"
	"fmt"

	"booklibrary/internal/book"
)

// BookFinder resolves the book a loan or return refers to.
type BookFinder interface {
	Get(ctx context.Context, id string) (book.Book, error)
}

// Service records loans and returns against existing books.
type Service struct {
	repo  Repository
	books BookFinder
}

func NewService(repo Repository, books BookFinder) *Service {
	return &Service{repo: repo, books: books}
}

// List returns the whole log, oldest first.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

// Record appends a loan or return. It returns book.ErrNotFound when the
// book does not exist.
func (s *Service) Record(ctx context.Context, action Action, req ActionRequest) (Entry, error) {
	if _, err := s.books.Get(ctx, req.BookID); err != nil {
		return Entry{}, fmt.Errorf("record %s: %w", action, err)
	}

	switch action {
	case ActionLoan:
		return s.repo.Loan(ctx, req.BookID, req.UserEmail)
	case ActionReturn:
		return s.repo.Return(ctx, req.BookID, req.UserEmail)
	default:
		return Entry{}, fmt.Errorf("unknown audit action %q", action)
	}
}
