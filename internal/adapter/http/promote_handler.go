package http

import (
	"errors"
	"net/http"

	draftDomain "projektrack-backend/internal/domain/draft"
	"projektrack-backend/internal/usecase/promote"

	"github.com/labstack/echo/v4"
)

type PromoteHandler struct{ uc *promote.Usecase }

func NewPromoteHandler(uc *promote.Usecase) *PromoteHandler { return &PromoteHandler{uc: uc} }

type promoteReq struct {
	// Optional human-assigned record number; issued automatically if empty.
	RecordNo   string `json:"record_no"   validate:"omitempty,recordno"`
	RecordYear int    `json:"record_year" validate:"omitempty,gte=2000,lte=2100"`
}

// Promote transfers an approved draft into a permanent numbered record.
// Safe to retry: a repeated call returns the existing record.
func (h *PromoteHandler) Promote(c echo.Context) error {
	draftID := c.Param("draft_id")
	if draftID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing draft_id path param"})
	}
	var req promoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Promote(c.Request().Context(), promote.PromoteInput{
		DraftID:    draftID,
		RecordNo:   req.RecordNo,
		RecordYear: req.RecordYear,
	})
	if err != nil {
		if errors.Is(err, draftDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "promotion failed"})
	}
	return c.JSON(http.StatusOK, dto)
}
