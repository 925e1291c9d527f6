package mysql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	projectDomain "projektrack-backend/internal/domain/project"

	"gorm.io/gorm"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) Save(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByRecordNo(ctx context.Context, recordNo string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).Where("record_no = ?", recordNo).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByDraftID(ctx context.Context, draftNumericID uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).Where("draft_id = ?", draftNumericID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) MaxRecordSuffix(ctx context.Context, prefix string, year int) (int, error) {
	var nos []string
	res := r.db.WithContext(ctx).Model(&projectDomain.Project{}).
		Where("record_no LIKE ?", fmt.Sprintf("%s/%04d/%%", prefix, year)).
		Pluck("record_no", &nos)
	if res.Error != nil {
		return 0, res.Error
	}
	return maxSuffix(nos), nil
}

// maxSuffix parses the trailing counter of PREFIX/YYYY/NNN identifiers and
// returns the highest; malformed values are ignored.
func maxSuffix(nos []string) int {
	max := 0
	for _, no := range nos {
		i := strings.LastIndexByte(no, '/')
		if i < 0 {
			continue
		}
		n, err := strconv.Atoi(no[i+1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
