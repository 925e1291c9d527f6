package draftmock

import (
	"context"

	domain "projektrack-backend/internal/domain/draft"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, d *domain.Draft) error
	SaveFn                  func(ctx context.Context, d *domain.Draft) error
	GetByDraftIDFn          func(ctx context.Context, draftID string) (*domain.Draft, error)
	GetByDraftIDForUpdateFn func(ctx context.Context, draftID string) (*domain.Draft, error)
	SumLiveCommitmentsFn    func(ctx context.Context, constituencyID uint64, excludeDraftID *string) (float64, error)
	SumLiveByConstituencyFn func(ctx context.Context) (map[uint64]float64, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Draft) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Draft) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDraftID(ctx context.Context, draftID string) (*domain.Draft, error) {
	if m.GetByDraftIDFn != nil {
		return m.GetByDraftIDFn(ctx, draftID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDraftIDForUpdate(ctx context.Context, draftID string) (*domain.Draft, error) {
	if m.GetByDraftIDForUpdateFn != nil {
		return m.GetByDraftIDForUpdateFn(ctx, draftID)
	}
	return nil, context.Canceled
}

func (m *Repo) SumLiveCommitments(ctx context.Context, constituencyID uint64, excludeDraftID *string) (float64, error) {
	if m.SumLiveCommitmentsFn != nil {
		return m.SumLiveCommitmentsFn(ctx, constituencyID, excludeDraftID)
	}
	return 0, nil
}

func (m *Repo) SumLiveByConstituency(ctx context.Context) (map[uint64]float64, error) {
	if m.SumLiveByConstituencyFn != nil {
		return m.SumLiveByConstituencyFn(ctx)
	}
	return map[uint64]float64{}, nil
}
