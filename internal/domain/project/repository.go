package project

import "context"

type Repository interface {
	Create(ctx context.Context, p *Project) error
	Save(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint64) (*Project, error)
	GetByProjectID(ctx context.Context, projectID string) (*Project, error)
	GetByRecordNo(ctx context.Context, recordNo string) (*Project, error)
	// GetByDraftID finds the record promoted from the given draft, if any.
	GetByDraftID(ctx context.Context, draftNumericID uint64) (*Project, error)
	// MaxRecordSuffix returns the highest NNN suffix among record numbers
	// matching PREFIX/YYYY/NNN for the given prefix and year; 0 if none.
	MaxRecordSuffix(ctx context.Context, prefix string, year int) (int, error)
}
