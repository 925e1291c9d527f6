package reconcile

type DraftDTO struct {
	DraftID             string   `json:"draft_id"`
	EntryID             string   `json:"entry_id"`
	NoticeID            string   `json:"notice_id"`
	Name                string   `json:"name"`
	ActualProjectCost   float64  `json:"actual_project_cost"`
	TotalCost           float64  `json:"total_cost"`
	OriginalProjectCost *float64 `json:"original_project_cost,omitempty"`
	Status              string   `json:"status"`
}

// Result reports what reconciliation did with each notice entry: drafts
// created, entries skipped as no-ops, entries that failed and were skipped.
type Result struct {
	Created  []DraftDTO `json:"created"`
	Skipped  int        `json:"skipped"`
	Failed   int        `json:"failed"`
	Warnings []string   `json:"warnings,omitempty"`
}
