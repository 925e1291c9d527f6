package promote

import "time"

type PromoteInput struct {
	DraftID string
	// RecordNo is the human-assigned identifier; when empty the numbering
	// authority issues one for RecordYear.
	RecordNo   string
	RecordYear int
}

type ProjectDTO struct {
	ProjectID           string    `json:"project_id"`
	DraftID             string    `json:"draft_id"`
	RecordNo            string    `json:"record_no"`
	RecordYear          int       `json:"record_year"`
	Name                string    `json:"name"`
	TotalCost           float64   `json:"total_cost"`
	OriginalProjectCost *float64  `json:"original_project_cost,omitempty"`
	Status              string    `json:"status"`
	ApprovedAt          time.Time `json:"approved_at"`
	PromotedAt          time.Time `json:"promoted_at"`
}
