package sequence

import "context"

type Repository interface {
	Create(ctx context.Context, s *Sequence) error
	Save(ctx context.Context, s *Sequence) error
	// GetForUpdate locks the counter row (FOR UPDATE) inside a transaction.
	GetForUpdate(ctx context.Context, kind string, year int) (*Sequence, error)
}
