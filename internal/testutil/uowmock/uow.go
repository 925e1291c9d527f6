package uowmock

import (
	"context"
	"errors"

	"projektrack-backend/internal/domain/draft"
	"projektrack-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinDraftTxFn func(ctx context.Context, draftID string, fn func(r uow.Repos, d *draft.Draft) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW whose WithinTx simply invokes the callback with
// the given repos, with no transactional behavior.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinDraftTx(ctx context.Context, draftID string, fn func(r uow.Repos, d *draft.Draft) error) error {
	if m.WithinDraftTxFn != nil {
		return m.WithinDraftTxFn(ctx, draftID, fn)
	}
	return errUnimplemented
}
