package book

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryRepo keeps the catalog in process memory. It is filled once at
// startup and read concurrently afterwards.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
	byID  map[string]int
}

// NewMemoryRepo builds a repository holding books in the given order.
func NewMemoryRepo(books []Book) (*MemoryRepo, error) {
	r := &MemoryRepo{
		books: make([]Book, 0, len(books)),
		byID:  make(map[string]int, len(books)),
	}
	for _, b := range books {
		if err := r.Add(context.Background(), b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// All returns a copy of the whole collection in stored order.
func (r *MemoryRepo) All(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.books), nil
}

// GetByID looks a book up by exact, case-sensitive id.
func (r *MemoryRepo) GetByID(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

// Add appends a book. Ids must be unique.
func (r *MemoryRepo) Add(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[b.ID]; ok {
		return fmt.Errorf("add %q: %w", b.ID, ErrAlreadyExists)
	}
	r.byID[b.ID] = len(r.books)
	r.books = append(r.books, b)
	return nil
}

// Len reports how many books are stored.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}
