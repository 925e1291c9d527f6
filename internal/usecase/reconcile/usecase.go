package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	draftDomain "projektrack-backend/internal/domain/draft"
	noticeDomain "projektrack-backend/internal/domain/notice"
	projectDomain "projektrack-backend/internal/domain/project"
	"projektrack-backend/internal/domain/uow"
	"projektrack-backend/pkg/id"

	"gorm.io/gorm"
)

// defaultName labels new-project entries submitted without a proposed name.
const defaultName = "Untitled project"

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Reconcile turns an approved notice's entries into new drafts for
// re-review. Entries are processed independently, each in its own
// transaction: one broken entry (say, a referenced record that no longer
// exists) is recorded and skipped without aborting the rest.
func (u *Usecase) Reconcile(ctx context.Context, noticeID string) (*Result, error) {
	if u.uow == nil {
		return nil, noticeDomain.ErrNotFound
	}

	var n *noticeDomain.Notice
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var lerr error
		n, lerr = r.Notices.GetByNoticeID(ctx, noticeID)
		return lerr
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, noticeDomain.ErrNotFound
		}
		return nil, err
	}
	if n.Status != noticeDomain.StatusApproved {
		return nil, noticeDomain.ErrNotApproved
	}

	res := &Result{}
	for i := range n.Entries {
		e := &n.Entries[i]
		if err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
			return processEntry(ctx, r, n, e, res)
		}); err != nil {
			res.Failed++
			res.Warnings = append(res.Warnings, fmt.Sprintf("entry %s: %v", e.EntryID, err))
			log.Printf("reconcile: notice %s entry %s skipped: %v", n.NoticeID, e.EntryID, err)
		}
	}
	return res, nil
}

func processEntry(ctx context.Context, r uow.Repos, n *noticeDomain.Notice, e *noticeDomain.Entry, res *Result) error {
	if !e.ReferencesProject() {
		return createNewProjectDraft(ctx, r, n, e, res)
	}

	p, err := r.Projects.GetByID(ctx, *e.ProjectID)
	if err != nil {
		return fmt.Errorf("referenced record %d: %w", *e.ProjectID, err)
	}

	if !hasChanges(e) {
		// The entry restates the status quo; nothing to review.
		res.Skipped++
		return nil
	}

	d := draftFromProject(p)
	d.DraftID = id.NewID32()
	d.SourceNoticeEntryID = &e.ID

	if e.ProposedName != "" {
		d.Name = e.ProposedName
	}
	if cost, ok := noticeDomain.ParseCost(e.ProposedCost); ok {
		if cost < 0 {
			return fmt.Errorf("negative proposed cost %q", e.ProposedCost)
		}
		// Proposed cost maps to actual project cost; total is recomputed
		// from it, not inherited from the superseded record.
		d.ActualProjectCost = cost
	}
	// Variable components must be re-priced by a human.
	d.ConsultationCost = 0
	d.InspectionCost = 0
	d.TaxCost = 0
	d.OtherCost = 0
	d.TotalCost = d.ComputeTotal()

	orig := p.TotalCost
	d.OriginalProjectCost = &orig

	if e.ProposedAgencyName != "" {
		resolveAgency(ctx, r, e, d, res)
	}

	d.Status = draftDomain.StatusAwaitingForm
	d.StatusUpdatedAt = time.Now().UTC()
	if err := r.Drafts.Create(ctx, d); err != nil {
		return err
	}
	res.Created = append(res.Created, toDTO(d, n, e))
	return nil
}

func createNewProjectDraft(ctx context.Context, r uow.Repos, n *noticeDomain.Notice, e *noticeDomain.Entry, res *Result) error {
	name := e.ProposedName
	if name == "" {
		name = defaultName
	}
	cost, ok := noticeDomain.ParseCost(e.ProposedCost)
	if ok && cost < 0 {
		return fmt.Errorf("negative proposed cost %q", e.ProposedCost)
	}

	d := &draftDomain.Draft{
		DraftID:             id.NewID32(),
		Name:                name,
		ConstituencyID:      n.ConstituencyID,
		ActualProjectCost:   cost,
		SourceNoticeEntryID: &e.ID,
		Status:              draftDomain.StatusAwaitingForm,
		StatusUpdatedAt:     time.Now().UTC(),
	}
	d.TotalCost = d.ComputeTotal()
	// A brand-new proposal starts on budget against itself.
	origin := cost
	d.OriginalProjectCost = &origin

	if e.ProposedAgencyName != "" {
		resolveAgency(ctx, r, e, d, res)
	}

	if err := r.Drafts.Create(ctx, d); err != nil {
		return err
	}
	res.Created = append(res.Created, toDTO(d, n, e))
	return nil
}

// resolveAgency maps a proposed agency name to an agency by exact match. An
// unresolved name keeps the original agency and records a warning; it never
// fails the entry.
func resolveAgency(ctx context.Context, r uow.Repos, e *noticeDomain.Entry, d *draftDomain.Draft, res *Result) {
	a, err := r.Agencies.GetByName(ctx, e.ProposedAgencyName)
	if err != nil {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("entry %s: agency %q not found, keeping original", e.EntryID, e.ProposedAgencyName))
		log.Printf("reconcile: entry %s: agency %q not found: %v", e.EntryID, e.ProposedAgencyName, err)
		return
	}
	d.AgencyID = &a.ID
}

// hasChanges compares proposed values against the entry's original
// snapshots. An empty proposed field means "no change requested", never
// "change to empty".
func hasChanges(e *noticeDomain.Entry) bool {
	if e.ProposedName != "" && e.ProposedName != e.OriginalName {
		return true
	}
	if e.ProposedAgencyName != "" && e.ProposedAgencyName != e.OriginalAgencyName {
		return true
	}
	if cost, ok := noticeDomain.ParseCost(e.ProposedCost); ok && !costsEqual(cost, e.OriginalCost) {
		return true
	}
	return false
}

func costsEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func draftFromProject(p *projectDomain.Project) *draftDomain.Draft {
	return &draftDomain.Draft{
		Name:              p.Name,
		Description:       p.Description,
		ConstituencyID:    p.ConstituencyID,
		AgencyID:          p.AgencyID,
		ActualProjectCost: p.ActualProjectCost,
		ConsultationCost:  p.ConsultationCost,
		InspectionCost:    p.InspectionCost,
		TaxCost:           p.TaxCost,
		OtherCost:         p.OtherCost,
		TotalCost:         p.TotalCost,
	}
}

func toDTO(d *draftDomain.Draft, n *noticeDomain.Notice, e *noticeDomain.Entry) DraftDTO {
	return DraftDTO{
		DraftID:             d.DraftID,
		EntryID:             e.EntryID,
		NoticeID:            n.NoticeID,
		Name:                d.Name,
		ActualProjectCost:   d.ActualProjectCost,
		TotalCost:           d.TotalCost,
		OriginalProjectCost: d.OriginalProjectCost,
		Status:              string(d.Status),
	}
}
