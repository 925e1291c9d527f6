package draft

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("draft not found")
	ErrInvalidTransition = errors.New("invalid draft state transition")
)

type Status string

const (
	StatusDraft            Status = "draft"
	StatusAwaitingForm     Status = "awaiting_form"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
)

// LiveStatuses are the statuses whose total cost counts against the
// constituency budget ("live commitments").
var LiveStatuses = []Status{StatusAwaitingApproval, StatusApproved}

type Draft struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	DraftID        string `gorm:"size:32;uniqueIndex:ux_drafts_draft_id_active" json:"draft_id"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	ConstituencyID uint64 `gorm:"column:constituency_id;not null;index:idx_drafts_constituency_status" json:"-"`
	AgencyID       *uint64 `gorm:"column:agency_id" json:"-"`

	ActualProjectCost float64 `gorm:"type:decimal(18,2)" json:"actual_project_cost"`
	ConsultationCost  float64 `gorm:"type:decimal(18,2)" json:"consultation_cost"`
	InspectionCost    float64 `gorm:"type:decimal(18,2)" json:"inspection_cost"`
	TaxCost           float64 `gorm:"type:decimal(18,2)" json:"tax_cost"`
	OtherCost         float64 `gorm:"type:decimal(18,2)" json:"other_cost"`
	// Denormalized sum of the cost components above.
	TotalCost float64 `gorm:"type:decimal(18,2)" json:"total_cost"`
	// Set only when the draft originates from a change notice; holds the
	// superseded record's total cost for over/under-budget comparison.
	OriginalProjectCost *float64 `gorm:"type:decimal(18,2)" json:"original_project_cost,omitempty"`
	// Lineage back to the notice entry that produced this draft, if any.
	SourceNoticeEntryID *uint64 `gorm:"column:source_notice_entry_id;index" json:"-"`

	Status          Status         `gorm:"type:enum('draft','awaiting_form','awaiting_approval','approved','rejected');default:'draft';index:idx_drafts_constituency_status" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy       string         `gorm:"size:32" json:"-"`
}

func (Draft) TableName() string { return "drafts" }

// ComputeTotal returns the sum of the cost components. TotalCost must always
// be recomputable through this method.
func (d *Draft) ComputeTotal() float64 {
	return d.ActualProjectCost + d.ConsultationCost + d.InspectionCost + d.TaxCost + d.OtherCost
}

// IsOverBudget reports whether the actual cost exceeds the superseded
// record's cost. Always false for drafts without lineage.
func (d *Draft) IsOverBudget() bool {
	return d.OriginalProjectCost != nil && d.ActualProjectCost > *d.OriginalProjectCost
}
