package constituency

import "context"

type Repository interface {
	Create(ctx context.Context, c *Constituency) error
	Save(ctx context.Context, c *Constituency) error
	GetByID(ctx context.Context, id uint64) (*Constituency, error)
	GetByConstituencyID(ctx context.Context, constituencyID string) (*Constituency, error)
	ListActive(ctx context.Context) ([]Constituency, error)

	// Budget entries (one per year, upsert keeps the unique index happy)
	UpsertBudgetEntry(ctx context.Context, e *BudgetEntry) error
	GetBudgetEntry(ctx context.Context, constituencyID uint64, year int) (*BudgetEntry, error)
}
