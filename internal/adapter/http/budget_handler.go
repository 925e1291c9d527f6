package http

import (
	"net/http"
	"strconv"

	"projektrack-backend/internal/usecase/budget"

	"github.com/labstack/echo/v4"
)

type BudgetHandler struct{ uc *budget.Usecase }

func NewBudgetHandler(uc *budget.Usecase) *BudgetHandler { return &BudgetHandler{uc: uc} }

// GetSummary renders allocated/committed/remaining for one constituency.
func (h *BudgetHandler) GetSummary(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
	}
	cons, err := h.uc.ResolveConstituency(c.Request().Context(), c.Param("constituency_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "constituency not found"})
	}
	return c.JSON(http.StatusOK, h.uc.Evaluate(c.Request().Context(), cons.ID, year))
}

// GetAggregate renders the supervisory all-constituencies view.
func (h *BudgetHandler) GetAggregate(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
	}
	return c.JSON(http.StatusOK, h.uc.Aggregate(c.Request().Context(), year))
}
