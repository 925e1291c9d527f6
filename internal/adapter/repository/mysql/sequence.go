package mysql

import (
	"context"

	sequenceDomain "projektrack-backend/internal/domain/sequence"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SequenceRepository struct{ db *gorm.DB }

func NewSequenceRepository(db *gorm.DB) *SequenceRepository { return &SequenceRepository{db: db} }

func (r *SequenceRepository) Create(ctx context.Context, s *sequenceDomain.Sequence) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SequenceRepository) Save(ctx context.Context, s *sequenceDomain.Sequence) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SequenceRepository) GetForUpdate(ctx context.Context, kind string, year int) (*sequenceDomain.Sequence, error) {
	var out sequenceDomain.Sequence
	q := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE; its single-writer lock gives the same guarantee
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := q.Where("kind = ? AND year = ?", kind, year).First(&out)
	return &out, res.Error
}
