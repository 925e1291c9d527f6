package budget

import (
	"context"
	"errors"
	"log"

	"projektrack-backend/internal/domain/constituency"
	"projektrack-backend/internal/domain/draft"
)

// ErrExceeded marks a budget admission failure. The wrapping message embeds
// the remaining budget at the moment of rejection.
var ErrExceeded = errors.New("budget exceeded")

type Usecase struct {
	constituencies constituency.Repository
	drafts         draft.Repository
}

func NewUsecase(c constituency.Repository, d draft.Repository) *Usecase {
	return &Usecase{constituencies: c, drafts: d}
}

// Evaluate computes allocated vs committed for one constituency and year.
// Committed counts drafts in a live status (awaiting approval or approved).
// Lookup failures return a zeroed/best-effort summary with a warning; the
// ledger never blocks on missing data.
func (u *Usecase) Evaluate(ctx context.Context, constituencyID uint64, year int) Summary {
	entry, err := u.constituencies.GetBudgetEntry(ctx, constituencyID, year)
	if err != nil {
		log.Printf("budget: allocation lookup failed for constituency=%d year=%d: %v", constituencyID, year, err)
		return Summary{}
	}
	committed, err := u.drafts.SumLiveCommitments(ctx, constituencyID, nil)
	if err != nil {
		log.Printf("budget: commitment sum failed for constituency=%d: %v", constituencyID, err)
		return Summary{Allocated: entry.Amount, Remaining: entry.Amount}
	}
	return Summary{
		Allocated: entry.Amount,
		Committed: committed,
		Remaining: entry.Amount - committed,
	}
}

// WouldExceed reports whether admitting candidateCost would push the
// caller's constituency over its allocation. excludeDraftID removes a draft
// being edited in place from the committed sum.
//
// Two deliberate policies: callers without a constituency association are
// exempt and always pass, and missing budget data fails open (allow, with a
// warning) rather than blocking submission.
func (u *Usecase) WouldExceed(ctx context.Context, caller Caller, year int, candidateCost float64, excludeDraftID *string) bool {
	if caller.ConstituencyID == nil {
		return false
	}
	cid := *caller.ConstituencyID

	entry, err := u.constituencies.GetBudgetEntry(ctx, cid, year)
	if err != nil {
		log.Printf("budget: no usable allocation for constituency=%d year=%d, allowing submission: %v", cid, year, err)
		return false
	}
	committed, err := u.drafts.SumLiveCommitments(ctx, cid, excludeDraftID)
	if err != nil {
		log.Printf("budget: commitment sum failed for constituency=%d, allowing submission: %v", cid, err)
		return false
	}
	return committed+candidateCost > entry.Amount
}

// ResolveConstituency maps a public constituency id to its record, for
// boundary-layer callers that only carry the public id.
func (u *Usecase) ResolveConstituency(ctx context.Context, publicID string) (*constituency.Constituency, error) {
	return u.constituencies.GetByConstituencyID(ctx, publicID)
}

// Aggregate sums allocated and committed across all active constituencies
// for supervisory reporting, with the same live-status filter.
func (u *Usecase) Aggregate(ctx context.Context, year int) AggregateSummary {
	list, err := u.constituencies.ListActive(ctx)
	if err != nil {
		log.Printf("budget: constituency list failed: %v", err)
		return AggregateSummary{}
	}
	sums, err := u.drafts.SumLiveByConstituency(ctx)
	if err != nil {
		log.Printf("budget: grouped commitment sum failed: %v", err)
		sums = map[uint64]float64{}
	}

	var out AggregateSummary
	out.Constituencies = len(list)
	for i := range list {
		c := &list[i]
		entry, err := u.constituencies.GetBudgetEntry(ctx, c.ID, year)
		if err == nil {
			out.Allocated += entry.Amount
		} else {
			log.Printf("budget: no %d allocation for constituency=%d (%s): %v", year, c.ID, c.Code, err)
		}
		out.Committed += sums[c.ID]
	}
	out.Remaining = out.Allocated - out.Committed
	return out
}
