package notice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	noticeDomain "projektrack-backend/internal/domain/notice"
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

// Create submits a notice with its entries. Referenced entries capture
// original name/cost/agency snapshots from the record at submission time so
// lineage survives even if the record later changes.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*NoticeDTO, error) {
	if in.ConstituencyID == 0 {
		return nil, errors.New("invalid input: constituency is required")
	}
	if len(in.Entries) == 0 {
		return nil, errors.New("invalid input: at least one entry is required")
	}
	for _, ein := range in.Entries {
		if cost, ok := noticeDomain.ParseCost(ein.ProposedCost); ok && cost < 0 {
			return nil, fmt.Errorf("invalid input: proposed cost %q must be non-negative", ein.ProposedCost)
		}
	}
	if in.NoticeDate.IsZero() {
		in.NoticeDate = time.Now().UTC()
	}

	noticeNo, err := u.numbering.Next(ctx, numbering.KindNotice, in.NoticeDate.Year())
	if err != nil {
		return nil, err
	}

	n := &noticeDomain.Notice{
		NoticeID:       id.NewID32(),
		NoticeNo:       noticeNo,
		ConstituencyID: in.ConstituencyID,
		NoticeDate:     in.NoticeDate,
		Status:         noticeDomain.StatusPending,
	}

	recordNos := make(map[string]string, len(in.Entries))
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for _, ein := range in.Entries {
			e := noticeDomain.Entry{
				EntryID:            id.NewID32(),
				ProposedName:       ein.ProposedName,
				ProposedCost:       ein.ProposedCost,
				ProposedAgencyName: ein.ProposedAgencyName,
			}
			if ein.RecordNo != "" {
				p, perr := r.Projects.GetByRecordNo(ctx, ein.RecordNo)
				if perr != nil {
					if errors.Is(perr, gorm.ErrRecordNotFound) {
						return fmt.Errorf("entry references unknown record %q", ein.RecordNo)
					}
					return perr
				}
				e.ProjectID = &p.ID
				e.OriginalName = p.Name
				e.OriginalCost = p.TotalCost
				if p.AgencyID != nil {
					a, aerr := r.Agencies.GetByID(ctx, *p.AgencyID)
					if aerr != nil {
						log.Printf("notice: entry %s: agency %d lookup failed, snapshot left empty: %v", e.EntryID, *p.AgencyID, aerr)
					} else {
						e.OriginalAgencyName = a.Name
					}
				}
				recordNos[e.EntryID] = p.RecordNo
			}
			n.Entries = append(n.Entries, e)
		}
		return r.Notices.Create(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(n, recordNos), nil
}

// FirstApprove records the first approval tier: pending → first_approved.
func (u *Usecase) FirstApprove(ctx context.Context, in ApproveInput) (*NoticeDTO, error) {
	return u.transition(ctx, in.NoticeID, func(n *noticeDomain.Notice) error {
		if n.Status != noticeDomain.StatusPending {
			return noticeDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		n.Status = noticeDomain.StatusFirstApproved
		n.FirstApproverID = &in.ApproverID
		n.FirstApprovedAt = &now
		n.FirstRemarks = in.Remarks
		return nil
	})
}

// SecondApprove records the second tier: first_approved → approved. Only a
// fully approved notice can be reconciled into drafts.
func (u *Usecase) SecondApprove(ctx context.Context, in ApproveInput) (*NoticeDTO, error) {
	return u.transition(ctx, in.NoticeID, func(n *noticeDomain.Notice) error {
		if n.Status != noticeDomain.StatusFirstApproved {
			return noticeDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		n.Status = noticeDomain.StatusApproved
		n.SecondApproverID = &in.ApproverID
		n.SecondApprovedAt = &now
		n.SecondRemarks = in.Remarks
		return nil
	})
}

// Reject closes a notice at either tier. Remarks are recorded against the
// tier that acted.
func (u *Usecase) Reject(ctx context.Context, in ApproveInput) (*NoticeDTO, error) {
	return u.transition(ctx, in.NoticeID, func(n *noticeDomain.Notice) error {
		switch n.Status {
		case noticeDomain.StatusPending:
			n.FirstRemarks = in.Remarks
		case noticeDomain.StatusFirstApproved:
			n.SecondRemarks = in.Remarks
		default:
			return noticeDomain.ErrInvalidTransition
		}
		n.Status = noticeDomain.StatusRejected
		return nil
	})
}

func (u *Usecase) Get(ctx context.Context, noticeID string) (*NoticeDTO, error) {
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
	return toDTO(n, nil), nil
}

func (u *Usecase) transition(ctx context.Context, noticeID string, apply func(n *noticeDomain.Notice) error) (*NoticeDTO, error) {
	var dto *NoticeDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		n, err := r.Notices.GetByNoticeID(ctx, noticeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return noticeDomain.ErrNotFound
			}
			return err
		}
		if err := apply(n); err != nil {
			return err
		}
		if err := r.Notices.Save(ctx, n); err != nil {
			return err
		}
		dto = toDTO(n, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(n *noticeDomain.Notice, recordNos map[string]string) *NoticeDTO {
	dto := &NoticeDTO{
		NoticeID:   n.NoticeID,
		NoticeNo:   n.NoticeNo,
		NoticeDate: n.NoticeDate,
		Status:     string(n.Status),
	}
	for i := range n.Entries {
		e := &n.Entries[i]
		dto.Entries = append(dto.Entries, EntryDTO{
			EntryID:            e.EntryID,
			RecordNo:           recordNos[e.EntryID],
			OriginalName:       e.OriginalName,
			OriginalCost:       e.OriginalCost,
			OriginalAgencyName: e.OriginalAgencyName,
			ProposedName:       e.ProposedName,
			ProposedCost:       e.ProposedCost,
			ProposedAgencyName: e.ProposedAgencyName,
		})
	}
	return dto
}
