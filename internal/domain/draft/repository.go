package draft

import "context"

type Repository interface {
	Create(ctx context.Context, d *Draft) error
	Save(ctx context.Context, d *Draft) error
	GetByDraftID(ctx context.Context, draftID string) (*Draft, error)
	// GetByDraftIDForUpdate locks the row (FOR UPDATE) inside a transaction.
	GetByDraftIDForUpdate(ctx context.Context, draftID string) (*Draft, error)

	// SumLiveCommitments sums total_cost over the constituency's drafts in a
	// live status, optionally excluding one draft (edit-in-place checks).
	SumLiveCommitments(ctx context.Context, constituencyID uint64, excludeDraftID *string) (float64, error)
	// SumLiveByConstituency returns live commitment totals grouped by
	// constituency, for the aggregate supervisory view.
	SumLiveByConstituency(ctx context.Context) (map[uint64]float64, error)
}
