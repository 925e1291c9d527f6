package project

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("project not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusClosed    Status = "closed"
)

// Project is a promoted draft: the permanent, numbered record. Core fields
// are copied at promotion time and never mutated afterward except for status.
type Project struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	ProjectID string `gorm:"size:32;uniqueIndex:ux_projects_public_id_active" json:"project_id"`
	// Back-reference to the originating draft. The unique index is the
	// storage half of the at-most-one-record-per-draft guarantee.
	DraftID    uint64 `gorm:"column:draft_id;not null;uniqueIndex:ux_projects_draft" json:"-"`
	RecordNo   string `gorm:"size:32;not null;uniqueIndex:ux_projects_record_no" json:"record_no"`
	RecordYear int    `gorm:"not null;index" json:"record_year"`

	Name           string  `gorm:"size:255;not null" json:"name"`
	Description    string  `gorm:"type:text" json:"description"`
	ConstituencyID uint64  `gorm:"column:constituency_id;not null;index" json:"-"`
	AgencyID       *uint64 `gorm:"column:agency_id" json:"-"`

	ActualProjectCost   float64  `gorm:"type:decimal(18,2)" json:"actual_project_cost"`
	ConsultationCost    float64  `gorm:"type:decimal(18,2)" json:"consultation_cost"`
	InspectionCost      float64  `gorm:"type:decimal(18,2)" json:"inspection_cost"`
	TaxCost             float64  `gorm:"type:decimal(18,2)" json:"tax_cost"`
	OtherCost           float64  `gorm:"type:decimal(18,2)" json:"other_cost"`
	TotalCost           float64  `gorm:"type:decimal(18,2)" json:"total_cost"`
	OriginalProjectCost *float64 `gorm:"type:decimal(18,2)" json:"original_project_cost,omitempty"`

	Status     Status         `gorm:"type:enum('active','cancelled','closed');default:'active'" json:"status"`
	ApprovedAt time.Time      `gorm:"column:approved_at" json:"approved_at"`
	PromotedAt time.Time      `gorm:"column:promoted_at" json:"promoted_at"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }
