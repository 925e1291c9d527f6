package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	noticeDomain "projektrack-backend/internal/domain/notice"
	"projektrack-backend/internal/usecase/budget"
	noticeuc "projektrack-backend/internal/usecase/notice"
	"projektrack-backend/internal/usecase/reconcile"

	"github.com/labstack/echo/v4"
)

type NoticeHandler struct {
	uc        *noticeuc.Usecase
	reconcile *reconcile.Usecase
	budget    *budget.Usecase
}

func NewNoticeHandler(uc *noticeuc.Usecase, rec *reconcile.Usecase, b *budget.Usecase) *NoticeHandler {
	return &NoticeHandler{uc: uc, reconcile: rec, budget: b}
}

type noticeEntryReq struct {
	RecordNo           string `json:"record_no"            validate:"omitempty,recordno"`
	ProposedName       string `json:"proposed_name"`
	ProposedCost       string `json:"proposed_cost"`
	ProposedAgencyName string `json:"proposed_agency_name"`
}

type createNoticeReq struct {
	ConstituencyID string           `json:"constituency_id" validate:"required,hex32"`
	NoticeDate     string           `json:"notice_date"     validate:"required,datetime=2006-01-02"`
	Entries        []noticeEntryReq `json:"entries"         validate:"required,min=1,dive"`
}

type approveNoticeReq struct {
	ApproverID string `json:"approver_id" validate:"required,hex32"`
	Remarks    string `json:"remarks"`
}

func (h *NoticeHandler) CreateNotice(c echo.Context) error {
	var req createNoticeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	cons, err := h.budget.ResolveConstituency(c.Request().Context(), req.ConstituencyID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "constituency not found"})
	}
	date, _ := time.Parse("2006-01-02", req.NoticeDate)

	in := noticeuc.CreateInput{ConstituencyID: cons.ID, NoticeDate: date}
	for _, e := range req.Entries {
		in.Entries = append(in.Entries, noticeuc.EntryInput{
			RecordNo:           e.RecordNo,
			ProposedName:       e.ProposedName,
			ProposedCost:       e.ProposedCost,
			ProposedAgencyName: e.ProposedAgencyName,
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *NoticeHandler) GetNotice(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("notice_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *NoticeHandler) FirstApprove(c echo.Context) error {
	return h.approve(c, h.uc.FirstApprove)
}

func (h *NoticeHandler) SecondApprove(c echo.Context) error {
	return h.approve(c, h.uc.SecondApprove)
}

func (h *NoticeHandler) RejectNotice(c echo.Context) error {
	return h.approve(c, h.uc.Reject)
}

func (h *NoticeHandler) approve(c echo.Context, op func(ctx context.Context, in noticeuc.ApproveInput) (*noticeuc.NoticeDTO, error)) error {
	var req approveNoticeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := op(c.Request().Context(), noticeuc.ApproveInput{
		NoticeID:   c.Param("notice_id"),
		ApproverID: req.ApproverID,
		Remarks:    req.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, noticeDomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		case errors.Is(err, noticeDomain.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}

// Reconcile turns an approved notice into new drafts for re-review.
func (h *NoticeHandler) Reconcile(c echo.Context) error {
	res, err := h.reconcile.Reconcile(c.Request().Context(), c.Param("notice_id"))
	if err != nil {
		switch {
		case errors.Is(err, noticeDomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		case errors.Is(err, noticeDomain.ErrNotApproved):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, res)
}
