package promote

import (
	"context"
	"errors"
	"log"
	"time"

	draftDomain "projektrack-backend/internal/domain/draft"
	projectDomain "projektrack-backend/internal/domain/project"
	"projektrack-backend/internal/domain/uow"
	"projektrack-backend/internal/usecase/numbering"
	"projektrack-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	uow       uow.UnitOfWork
	numbering *numbering.Usecase
}

func NewUsecase(tx uow.UnitOfWork, num *numbering.Usecase) *Usecase {
	return &Usecase{uow: tx, numbering: num}
}

// Promote transfers an approved draft into a permanent numbered record,
// exactly once. Repeated calls return the existing record unchanged (fixing
// the draft status to approved if needed). The draft row is locked for the
// whole check-then-create sequence and the unique draft back-reference on
// the projects table backs it up; a conflict from a promotion that raced
// past the lock is retried once against the winner's record.
func (u *Usecase) Promote(ctx context.Context, in PromoteInput) (*ProjectDTO, error) {
	if u.uow == nil {
		return nil, draftDomain.ErrInvalidTransition
	}
	if in.RecordYear == 0 {
		in.RecordYear = time.Now().UTC().Year()
	}
	if in.RecordNo == "" {
		no, err := u.numbering.Next(ctx, numbering.KindProject, in.RecordYear)
		if err != nil {
			return nil, err
		}
		in.RecordNo = no
	}

	dto, err := u.promoteOnce(ctx, in)
	if uow.IsConflict(err) {
		dto, err = u.promoteOnce(ctx, in)
	}
	return dto, err
}

func (u *Usecase) promoteOnce(ctx context.Context, in PromoteInput) (*ProjectDTO, error) {
	var dto *ProjectDTO

	err := u.uow.WithinDraftTx(ctx, in.DraftID, func(r uow.Repos, d *draftDomain.Draft) error {
		now := time.Now().UTC()

		existing, err := r.Projects.GetByDraftID(ctx, d.ID)
		switch {
		case err == nil:
			// Idempotent path: record already exists, never create a second.
			if d.Status != draftDomain.StatusApproved {
				d.Status = draftDomain.StatusApproved
				d.StatusUpdatedAt = now
				if err := r.Drafts.Save(ctx, d); err != nil {
					return err
				}
			}
			dto = toDTO(existing, d.DraftID)
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		p := projectFromDraft(d, in.RecordNo, in.RecordYear, now)
		if err := r.Projects.Create(ctx, p); err != nil {
			return err
		}

		// d was re-read under lock by WithinDraftTx, so this save cannot
		// clobber a concurrent edit with stale values.
		d.Status = draftDomain.StatusApproved
		d.StatusUpdatedAt = now
		if err := r.Drafts.Save(ctx, d); err != nil {
			return err
		}

		log.Printf("promote: draft %s promoted to record %s (project %s)", d.DraftID, p.RecordNo, p.ProjectID)
		dto = toDTO(p, d.DraftID)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, draftDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func projectFromDraft(d *draftDomain.Draft, recordNo string, recordYear int, now time.Time) *projectDomain.Project {
	return &projectDomain.Project{
		ProjectID:           id.NewID32(),
		DraftID:             d.ID,
		RecordNo:            recordNo,
		RecordYear:          recordYear,
		Name:                d.Name,
		Description:         d.Description,
		ConstituencyID:      d.ConstituencyID,
		AgencyID:            d.AgencyID,
		ActualProjectCost:   d.ActualProjectCost,
		ConsultationCost:    d.ConsultationCost,
		InspectionCost:      d.InspectionCost,
		TaxCost:             d.TaxCost,
		OtherCost:           d.OtherCost,
		TotalCost:           d.TotalCost,
		OriginalProjectCost: d.OriginalProjectCost,
		Status:              projectDomain.StatusActive,
		ApprovedAt:          now,
		PromotedAt:          now,
	}
}

func toDTO(p *projectDomain.Project, draftID string) *ProjectDTO {
	return &ProjectDTO{
		ProjectID:           p.ProjectID,
		DraftID:             draftID,
		RecordNo:            p.RecordNo,
		RecordYear:          p.RecordYear,
		Name:                p.Name,
		TotalCost:           p.TotalCost,
		OriginalProjectCost: p.OriginalProjectCost,
		Status:              string(p.Status),
		ApprovedAt:          p.ApprovedAt,
		PromotedAt:          p.PromotedAt,
	}
}
