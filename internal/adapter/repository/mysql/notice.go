package mysql

import (
	"context"
	"fmt"

	noticeDomain "projektrack-backend/internal/domain/notice"

	"gorm.io/gorm"
)

type NoticeRepository struct{ db *gorm.DB }

func NewNoticeRepository(db *gorm.DB) *NoticeRepository { return &NoticeRepository{db: db} }

// Create persists the notice and its entries in one insert; gorm cascades
// the owned Entries association.
func (r *NoticeRepository) Create(ctx context.Context, n *noticeDomain.Notice) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoticeRepository) Save(ctx context.Context, n *noticeDomain.Notice) error {
	return r.db.WithContext(ctx).Omit("Entries").Save(n).Error
}

func (r *NoticeRepository) GetByNoticeID(ctx context.Context, noticeID string) (*noticeDomain.Notice, error) {
	var out noticeDomain.Notice
	res := r.db.WithContext(ctx).
		Preload("Entries").
		Where("notice_id = ?", noticeID).
		First(&out)
	return &out, res.Error
}

func (r *NoticeRepository) MaxNoticeSuffix(ctx context.Context, prefix string, year int) (int, error) {
	var nos []string
	res := r.db.WithContext(ctx).Model(&noticeDomain.Notice{}).
		Where("notice_no LIKE ?", fmt.Sprintf("%s/%04d/%%", prefix, year)).
		Pluck("notice_no", &nos)
	if res.Error != nil {
		return 0, res.Error
	}
	return maxSuffix(nos), nil
}
