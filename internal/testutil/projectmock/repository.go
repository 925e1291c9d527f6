package projectmock

import (
	"context"

	domain "projektrack-backend/internal/domain/project"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, p *domain.Project) error
	SaveFn            func(ctx context.Context, p *domain.Project) error
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.Project, error)
	GetByProjectIDFn  func(ctx context.Context, projectID string) (*domain.Project, error)
	GetByRecordNoFn   func(ctx context.Context, recordNo string) (*domain.Project, error)
	GetByDraftIDFn    func(ctx context.Context, draftNumericID uint64) (*domain.Project, error)
	MaxRecordSuffixFn func(ctx context.Context, prefix string, year int) (int, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Project) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDFn != nil {
		return m.GetByProjectIDFn(ctx, projectID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByRecordNo(ctx context.Context, recordNo string) (*domain.Project, error) {
	if m.GetByRecordNoFn != nil {
		return m.GetByRecordNoFn(ctx, recordNo)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDraftID(ctx context.Context, draftNumericID uint64) (*domain.Project, error) {
	if m.GetByDraftIDFn != nil {
		return m.GetByDraftIDFn(ctx, draftNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) MaxRecordSuffix(ctx context.Context, prefix string, year int) (int, error) {
	if m.MaxRecordSuffixFn != nil {
		return m.MaxRecordSuffixFn(ctx, prefix, year)
	}
	return 0, nil
}
