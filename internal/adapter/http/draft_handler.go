package http

import (
	"errors"
	"net/http"

	"projektrack-backend/internal/usecase/budget"
	draftuc "projektrack-backend/internal/usecase/draft"

	"github.com/labstack/echo/v4"
)

type DraftHandler struct {
	uc     *draftuc.Usecase
	budget *budget.Usecase
}

func NewDraftHandler(uc *draftuc.Usecase, b *budget.Usecase) *DraftHandler {
	return &DraftHandler{uc: uc, budget: b}
}

type createDraftReq struct {
	Name              string  `json:"name"              validate:"required"`
	Description       string  `json:"description"`
	ConstituencyID    string  `json:"constituency_id"   validate:"required,hex32"`
	ActualProjectCost float64 `json:"actual_project_cost" validate:"gte=0,dec2"`
	ConsultationCost  float64 `json:"consultation_cost"   validate:"gte=0,dec2"`
	InspectionCost    float64 `json:"inspection_cost"     validate:"gte=0,dec2"`
	TaxCost           float64 `json:"tax_cost"            validate:"gte=0,dec2"`
	OtherCost         float64 `json:"other_cost"          validate:"gte=0,dec2"`
	Year              int     `json:"year"              validate:"required,gte=2000,lte=2100"`
}

// callerFrom reads the authenticated officer's constituency association from
// the gateway-set header. Absent header means a supervisory caller with no
// association (exempt from budget admission).
func (h *DraftHandler) callerFrom(c echo.Context) (budget.Caller, error) {
	pub := c.Request().Header.Get("Ax-Constituency-Id")
	if pub == "" {
		return budget.Caller{}, nil
	}
	cons, err := h.budget.ResolveConstituency(c.Request().Context(), pub)
	if err != nil {
		return budget.Caller{}, err
	}
	return budget.Caller{ConstituencyID: &cons.ID}, nil
}

func (h *DraftHandler) CreateDraft(c echo.Context) error {
	var req createDraftReq
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
	caller, err := h.callerFrom(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown caller constituency"})
	}

	dto, err := h.uc.Create(c.Request().Context(), draftuc.CreateInput{
		Name:              req.Name,
		Description:       req.Description,
		ConstituencyID:    cons.ID,
		ActualProjectCost: req.ActualProjectCost,
		ConsultationCost:  req.ConsultationCost,
		InspectionCost:    req.InspectionCost,
		TaxCost:           req.TaxCost,
		OtherCost:         req.OtherCost,
		Year:              req.Year,
		Caller:            caller,
	})
	if err != nil {
		if errors.Is(err, budget.ErrExceeded) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DraftHandler) GetDraft(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("draft_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}
