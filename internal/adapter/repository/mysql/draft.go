package mysql

import (
	"context"

	draftDomain "projektrack-backend/internal/domain/draft"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DraftRepository struct{ db *gorm.DB }

func NewDraftRepository(db *gorm.DB) *DraftRepository { return &DraftRepository{db: db} }

func (r *DraftRepository) Create(ctx context.Context, d *draftDomain.Draft) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DraftRepository) Save(ctx context.Context, d *draftDomain.Draft) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DraftRepository) GetByDraftID(ctx context.Context, draftID string) (*draftDomain.Draft, error) {
	var out draftDomain.Draft
	res := r.db.WithContext(ctx).Where("draft_id = ?", draftID).First(&out)
	return &out, res.Error
}

func (r *DraftRepository) GetByDraftIDForUpdate(ctx context.Context, draftID string) (*draftDomain.Draft, error) {
	var out draftDomain.Draft
	q := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE; its single-writer lock gives the same guarantee
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := q.Where("draft_id = ?", draftID).First(&out)
	return &out, res.Error
}

func (r *DraftRepository) SumLiveCommitments(ctx context.Context, constituencyID uint64, excludeDraftID *string) (float64, error) {
	q := r.db.WithContext(ctx).Model(&draftDomain.Draft{}).
		Where("constituency_id = ? AND status IN ?", constituencyID, draftDomain.LiveStatuses)
	if excludeDraftID != nil {
		q = q.Where("draft_id <> ?", *excludeDraftID)
	}
	var out struct{ Total float64 }
	res := q.Select("COALESCE(SUM(total_cost), 0) AS total").Scan(&out)
	return out.Total, res.Error
}

func (r *DraftRepository) SumLiveByConstituency(ctx context.Context) (map[uint64]float64, error) {
	type row struct {
		ConstituencyID uint64
		Total          float64
	}
	var rows []row
	res := r.db.WithContext(ctx).Model(&draftDomain.Draft{}).
		Where("status IN ?", draftDomain.LiveStatuses).
		Select("constituency_id, SUM(total_cost) AS total").
		Group("constituency_id").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	out := make(map[uint64]float64, len(rows))
	for _, rw := range rows {
		out[rw.ConstituencyID] = rw.Total
	}
	return out, nil
}
