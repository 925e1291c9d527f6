package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	draftDomain "projektrack-backend/internal/domain/draft"
	"projektrack-backend/internal/usecase/budget"
	"projektrack-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo   draftDomain.Repository
	budget *budget.Usecase
}

func NewUsecase(r draftDomain.Repository, b *budget.Usecase) *Usecase {
	return &Usecase{repo: r, budget: b}
}

// Create validates and admits a new draft. Admission is gated by the budget
// ledger; the rejection message embeds the remaining budget at that moment.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DraftDTO, error) {
	if in.Name == "" {
		return nil, errors.New("invalid input: name is required")
	}
	if in.ConstituencyID == 0 {
		return nil, errors.New("invalid input: constituency is required")
	}
	if hasNegativeCost(in.ActualProjectCost, in.ConsultationCost, in.InspectionCost, in.TaxCost, in.OtherCost) {
		return nil, errors.New("invalid input: costs must be non-negative")
	}

	total := in.ActualProjectCost + in.ConsultationCost + in.InspectionCost + in.TaxCost + in.OtherCost
	if u.budget.WouldExceed(ctx, in.Caller, in.Year, total, nil) {
		s := u.budget.Evaluate(ctx, *in.Caller.ConstituencyID, in.Year)
		return nil, fmt.Errorf("%w: remaining budget is %.2f", budget.ErrExceeded, s.Remaining)
	}

	d := &draftDomain.Draft{
		DraftID:           id.NewID32(),
		Name:              in.Name,
		Description:       in.Description,
		ConstituencyID:    in.ConstituencyID,
		AgencyID:          in.AgencyID,
		ActualProjectCost: in.ActualProjectCost,
		ConsultationCost:  in.ConsultationCost,
		InspectionCost:    in.InspectionCost,
		TaxCost:           in.TaxCost,
		OtherCost:         in.OtherCost,
		Status:            draftDomain.StatusAwaitingApproval,
		StatusUpdatedAt:   time.Now().UTC(),
	}
	d.TotalCost = d.ComputeTotal()

	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

// UpdateCosts re-prices a draft that is still editable (fresh or waiting for
// its form to be completed) and moves it to awaiting approval. The budget
// check excludes the draft itself so an edit does not double-count.
func (u *Usecase) UpdateCosts(ctx context.Context, in UpdateCostsInput) (*DraftDTO, error) {
	if hasNegativeCost(in.ActualProjectCost, in.ConsultationCost, in.InspectionCost, in.TaxCost, in.OtherCost) {
		return nil, errors.New("invalid input: costs must be non-negative")
	}

	d, err := u.repo.GetByDraftID(ctx, in.DraftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, draftDomain.ErrNotFound
		}
		return nil, err
	}
	if d.Status != draftDomain.StatusDraft && d.Status != draftDomain.StatusAwaitingForm {
		return nil, draftDomain.ErrInvalidTransition
	}

	total := in.ActualProjectCost + in.ConsultationCost + in.InspectionCost + in.TaxCost + in.OtherCost
	if u.budget.WouldExceed(ctx, in.Caller, in.Year, total, &in.DraftID) {
		s := u.budget.Evaluate(ctx, *in.Caller.ConstituencyID, in.Year)
		return nil, fmt.Errorf("%w: remaining budget is %.2f", budget.ErrExceeded, s.Remaining)
	}

	d.ActualProjectCost = in.ActualProjectCost
	d.ConsultationCost = in.ConsultationCost
	d.InspectionCost = in.InspectionCost
	d.TaxCost = in.TaxCost
	d.OtherCost = in.OtherCost
	d.TotalCost = d.ComputeTotal()
	d.Status = draftDomain.StatusAwaitingApproval
	d.StatusUpdatedAt = time.Now().UTC()

	if err := u.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

// Reject moves a draft awaiting approval to rejected.
func (u *Usecase) Reject(ctx context.Context, draftID string) (*DraftDTO, error) {
	d, err := u.repo.GetByDraftID(ctx, draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, draftDomain.ErrNotFound
		}
		return nil, err
	}
	if d.Status != draftDomain.StatusAwaitingApproval {
		return nil, draftDomain.ErrInvalidTransition
	}
	d.Status = draftDomain.StatusRejected
	d.StatusUpdatedAt = time.Now().UTC()
	if err := u.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

func (u *Usecase) Get(ctx context.Context, draftID string) (*DraftDTO, error) {
	d, err := u.repo.GetByDraftID(ctx, draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, draftDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(d), nil
}

func hasNegativeCost(costs ...float64) bool {
	for _, c := range costs {
		if c < 0 {
			return true
		}
	}
	return false
}

func toDTO(d *draftDomain.Draft) *DraftDTO {
	return &DraftDTO{
		DraftID:             d.DraftID,
		Name:                d.Name,
		Description:         d.Description,
		ActualProjectCost:   d.ActualProjectCost,
		ConsultationCost:    d.ConsultationCost,
		InspectionCost:      d.InspectionCost,
		TaxCost:             d.TaxCost,
		OtherCost:           d.OtherCost,
		TotalCost:           d.TotalCost,
		OriginalProjectCost: d.OriginalProjectCost,
		OverBudget:          d.IsOverBudget(),
		Status:              string(d.Status),
		CreatedAt:           d.CreatedAt,
	}
}
