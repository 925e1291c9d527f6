package mysql

import (
	"context"

	constituencyDomain "projektrack-backend/internal/domain/constituency"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConstituencyRepository struct{ db *gorm.DB }

func NewConstituencyRepository(db *gorm.DB) *ConstituencyRepository {
	return &ConstituencyRepository{db: db}
}

func (r *ConstituencyRepository) Create(ctx context.Context, c *constituencyDomain.Constituency) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ConstituencyRepository) Save(ctx context.Context, c *constituencyDomain.Constituency) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ConstituencyRepository) GetByID(ctx context.Context, id uint64) (*constituencyDomain.Constituency, error) {
	var out constituencyDomain.Constituency
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ConstituencyRepository) GetByConstituencyID(ctx context.Context, constituencyID string) (*constituencyDomain.Constituency, error) {
	var out constituencyDomain.Constituency
	res := r.db.WithContext(ctx).Where("constituency_id = ?", constituencyID).First(&out)
	return &out, res.Error
}

func (r *ConstituencyRepository) ListActive(ctx context.Context) ([]constituencyDomain.Constituency, error) {
	var out []constituencyDomain.Constituency
	res := r.db.WithContext(ctx).
		Where("status = ?", constituencyDomain.StatusActive).
		Order("name ASC").
		Find(&out)
	return out, res.Error
}

// UpsertBudgetEntry inserts or updates the amount for (constituency, year),
// keeping the one-entry-per-year invariant.
func (r *ConstituencyRepository) UpsertBudgetEntry(ctx context.Context, e *constituencyDomain.BudgetEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "constituency_id"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(e).Error
}

func (r *ConstituencyRepository) GetBudgetEntry(ctx context.Context, constituencyID uint64, year int) (*constituencyDomain.BudgetEntry, error) {
	var out constituencyDomain.BudgetEntry
	res := r.db.WithContext(ctx).
		Where("constituency_id = ? AND year = ?", constituencyID, year).
		First(&out)
	return &out, res.Error
}
