package mysql

import (
	"context"

	"projektrack-backend/internal/domain/draft"
	"projektrack-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Constituencies: &ConstituencyRepository{db: tx},
		Agencies:       &AgencyRepository{db: tx},
		Drafts:         &DraftRepository{db: tx},
		Projects:       &ProjectRepository{db: tx},
		Notices:        &NoticeRepository{db: tx},
		Sequences:      &SequenceRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinDraftTx(ctx context.Context, draftID string, fn func(r uow.Repos, d *draft.Draft) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the draft row up-front to prevent races
		d, err := r.Drafts.GetByDraftIDForUpdate(ctx, draftID)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}
