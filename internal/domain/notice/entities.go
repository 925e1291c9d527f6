package notice

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("notice not found")
	ErrInvalidTransition = errors.New("invalid notice state transition")
	ErrNotApproved       = errors.New("notice is not fully approved")
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusFirstApproved Status = "first_approved"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
)

// Notice is a batch change request (NOC) against a constituency. It requires
// two-tier approval before reconciliation turns its entries into drafts.
type Notice struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	NoticeID       string    `gorm:"size:32;uniqueIndex:ux_notices_public_id_active" json:"notice_id"`
	NoticeNo       string    `gorm:"size:32;not null;uniqueIndex:ux_notices_notice_no" json:"notice_no"`
	ConstituencyID uint64    `gorm:"column:constituency_id;not null;index" json:"-"`
	NoticeDate     time.Time `gorm:"column:notice_date;type:date;not null" json:"notice_date"`

	Status           Status     `gorm:"type:enum('pending','first_approved','approved','rejected');default:'pending'" json:"status"`
	FirstApproverID  *string    `gorm:"size:32" json:"first_approver_id,omitempty"`
	FirstApprovedAt  *time.Time `json:"first_approved_at,omitempty"`
	FirstRemarks     string     `gorm:"type:text" json:"first_remarks,omitempty"`
	SecondApproverID *string    `gorm:"size:32" json:"second_approver_id,omitempty"`
	SecondApprovedAt *time.Time `json:"second_approved_at,omitempty"`
	SecondRemarks    string     `gorm:"type:text" json:"second_remarks,omitempty"`

	Entries []Entry `gorm:"foreignKey:NoticeID;references:ID" json:"entries,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Notice) TableName() string { return "notices" }

// Entry is one line item of a notice. ProjectID nil means the entry proposes
// a brand-new project; otherwise it amends the referenced record. Original
// values are snapshots captured at submission so lineage survives later
// changes to the source record. ProposedCost keeps the raw form input;
// empty string means no change requested.
type Entry struct {
	ID       uint64  `gorm:"primaryKey;column:id" json:"-"`
	EntryID  string  `gorm:"size:32;uniqueIndex:ux_notice_entries_public_id" json:"entry_id"`
	NoticeID uint64  `gorm:"column:notice_id;not null;index" json:"-"`
	ProjectID *uint64 `gorm:"column:project_id;index" json:"-"`

	OriginalName       string  `gorm:"size:255" json:"original_name"`
	OriginalCost       float64 `gorm:"type:decimal(18,2)" json:"original_cost"`
	OriginalAgencyName string  `gorm:"size:255" json:"original_agency_name"`

	ProposedName       string `gorm:"size:255" json:"proposed_name"`
	ProposedCost       string `gorm:"size:32" json:"proposed_cost"`
	ProposedAgencyName string `gorm:"size:255" json:"proposed_agency_name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string { return "notice_entries" }

// ReferencesProject reports whether the entry amends an existing record.
func (e *Entry) ReferencesProject() bool { return e.ProjectID != nil }

// ParseCost reads a raw proposed-cost snapshot. Value-equal inputs in
// different representations ("120000", "120,000.00") parse to the same
// number, so a restated cost is never a change. Unparseable input counts as
// no proposal. Negative values parse fine; callers must reject them, a
// proposed cost can never be below zero.
func ParseCost(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, ",", "")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
