package noticemock

import (
	"context"

	domain "projektrack-backend/internal/domain/notice"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, n *domain.Notice) error
	SaveFn            func(ctx context.Context, n *domain.Notice) error
	GetByNoticeIDFn   func(ctx context.Context, noticeID string) (*domain.Notice, error)
	MaxNoticeSuffixFn func(ctx context.Context, prefix string, year int) (int, error)
}

func (m *Repo) Create(ctx context.Context, n *domain.Notice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, n *domain.Notice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, n)
	}
	return nil
}

func (m *Repo) GetByNoticeID(ctx context.Context, noticeID string) (*domain.Notice, error) {
	if m.GetByNoticeIDFn != nil {
		return m.GetByNoticeIDFn(ctx, noticeID)
	}
	return nil, context.Canceled
}

func (m *Repo) MaxNoticeSuffix(ctx context.Context, prefix string, year int) (int, error) {
	if m.MaxNoticeSuffixFn != nil {
		return m.MaxNoticeSuffixFn(ctx, prefix, year)
	}
	return 0, nil
}
