package agency

import "context"

type Repository interface {
	Create(ctx context.Context, a *Agency) error
	GetByID(ctx context.Context, id uint64) (*Agency, error)
	// GetByName resolves an agency by exact name match.
	GetByName(ctx context.Context, name string) (*Agency, error)
}
