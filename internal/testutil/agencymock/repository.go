package agencymock

import (
	"context"

	domain "projektrack-backend/internal/domain/agency"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn    func(ctx context.Context, a *domain.Agency) error
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Agency, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Agency, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Agency) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Agency, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Agency, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}
