package constituencymock

import (
	"context"

	domain "projektrack-backend/internal/domain/constituency"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, c *domain.Constituency) error
	SaveFn                func(ctx context.Context, c *domain.Constituency) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Constituency, error)
	GetByConstituencyIDFn func(ctx context.Context, constituencyID string) (*domain.Constituency, error)
	ListActiveFn          func(ctx context.Context) ([]domain.Constituency, error)
	UpsertBudgetEntryFn   func(ctx context.Context, e *domain.BudgetEntry) error
	GetBudgetEntryFn      func(ctx context.Context, constituencyID uint64, year int) (*domain.BudgetEntry, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Constituency) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Constituency) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Constituency, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByConstituencyID(ctx context.Context, constituencyID string) (*domain.Constituency, error) {
	if m.GetByConstituencyIDFn != nil {
		return m.GetByConstituencyIDFn(ctx, constituencyID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Constituency, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) UpsertBudgetEntry(ctx context.Context, e *domain.BudgetEntry) error {
	if m.UpsertBudgetEntryFn != nil {
		return m.UpsertBudgetEntryFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetBudgetEntry(ctx context.Context, constituencyID uint64, year int) (*domain.BudgetEntry, error) {
	if m.GetBudgetEntryFn != nil {
		return m.GetBudgetEntryFn(ctx, constituencyID, year)
	}
	return nil, context.Canceled
}
