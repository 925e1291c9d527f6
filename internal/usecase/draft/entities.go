package draft

import (
	"time"

	"projektrack-backend/internal/usecase/budget"
)

type CreateInput struct {
	Name           string
	Description    string
	ConstituencyID uint64
	AgencyID       *uint64

	ActualProjectCost float64
	ConsultationCost  float64
	InspectionCost    float64
	TaxCost           float64
	OtherCost         float64

	// Year selects the budget allocation the submission is gated against.
	Year   int
	Caller budget.Caller
}

type UpdateCostsInput struct {
	DraftID string

	ActualProjectCost float64
	ConsultationCost  float64
	InspectionCost    float64
	TaxCost           float64
	OtherCost         float64

	Year   int
	Caller budget.Caller
}

type DraftDTO struct {
	DraftID             string    `json:"draft_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	ActualProjectCost   float64   `json:"actual_project_cost"`
	ConsultationCost    float64   `json:"consultation_cost"`
	InspectionCost      float64   `json:"inspection_cost"`
	TaxCost             float64   `json:"tax_cost"`
	OtherCost           float64   `json:"other_cost"`
	TotalCost           float64   `json:"total_cost"`
	OriginalProjectCost *float64  `json:"original_project_cost,omitempty"`
	OverBudget          bool      `json:"over_budget"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}
