package auditlog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository is the append-only audit log.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Loan(ctx context.Context, bookID, userEmail string) (Entry, error)
	Return(ctx context.Context, bookID, userEmail string) (Entry, error)
}

// MemoryRepo keeps entries in insertion order.
type MemoryRepo struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{now: time.Now}
}

// List returns a copy of every entry, oldest first.
func (r *MemoryRepo) List(_ context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries), nil
}

func (r *MemoryRepo) Loan(_ context.Context, bookID, userEmail string) (Entry, error) {
	return r.append(ActionLoan, bookID, userEmail), nil
}

func (r *MemoryRepo) Return(_ context.Context, bookID, userEmail string) (Entry, error) {
	return r.append(ActionReturn, bookID, userEmail), nil
}

func (r *MemoryRepo) append(action Action, bookID, userEmail string) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := Entry{
		ID:        uuid.NewString(),
		Type:      action,
		BookID:    bookID,
		UserEmail: userEmail,
		Date:      r.now().UTC(),
	}
	r.entries = append(r.entries, e)
	return e
}
