package notice

import "context"

type Repository interface {
	// Create persists the notice together with its entries.
	Create(ctx context.Context, n *Notice) error
	Save(ctx context.Context, n *Notice) error
	// GetByNoticeID loads the notice with its entries preloaded.
	GetByNoticeID(ctx context.Context, noticeID string) (*Notice, error)
	// MaxNoticeSuffix returns the highest NNN suffix among notice numbers
	// matching PREFIX/YYYY/NNN for the given prefix and year; 0 if none.
	MaxNoticeSuffix(ctx context.Context, prefix string, year int) (int, error)
}
