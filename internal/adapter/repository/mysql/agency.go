package mysql

import (
	"context"

	agencyDomain "projektrack-backend/internal/domain/agency"

	"gorm.io/gorm"
)

type AgencyRepository struct{ db *gorm.DB }

func NewAgencyRepository(db *gorm.DB) *AgencyRepository { return &AgencyRepository{db: db} }

func (r *AgencyRepository) Create(ctx context.Context, a *agencyDomain.Agency) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AgencyRepository) GetByID(ctx context.Context, id uint64) (*agencyDomain.Agency, error) {
	var out agencyDomain.Agency
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *AgencyRepository) GetByName(ctx context.Context, name string) (*agencyDomain.Agency, error) {
	var out agencyDomain.Agency
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}
