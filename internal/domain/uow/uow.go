package uow

import (
	"context"
	"errors"
	"strings"

	"projektrack-backend/internal/domain/agency"
	"projektrack-backend/internal/domain/constituency"
	"projektrack-backend/internal/domain/draft"
	"projektrack-backend/internal/domain/notice"
	"projektrack-backend/internal/domain/project"
	"projektrack-backend/internal/domain/sequence"

	"gorm.io/gorm"
)

type Repos struct {
	Constituencies constituency.Repository
	Agencies       agency.Repository
	Drafts         draft.Repository
	Projects       project.Repository
	Notices        notice.Repository
	Sequences      sequence.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the draft row first, then pass it in
	WithinDraftTx(ctx context.Context, draftID string, fn func(r Repos, d *draft.Draft) error) error
}

// IsConflict reports whether err is a unique-constraint violation. Promotion
// and numbering retry once on conflict instead of failing outright.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
