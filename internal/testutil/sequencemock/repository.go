package sequencemock

import (
	"context"

	domain "projektrack-backend/internal/domain/sequence"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, s *domain.Sequence) error
	SaveFn         func(ctx context.Context, s *domain.Sequence) error
	GetForUpdateFn func(ctx context.Context, kind string, year int) (*domain.Sequence, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Sequence) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Sequence) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetForUpdate(ctx context.Context, kind string, year int) (*domain.Sequence, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, kind, year)
	}
	return nil, context.Canceled
}
