package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the read access the books API needs.
type Repository interface {
	All(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
}
