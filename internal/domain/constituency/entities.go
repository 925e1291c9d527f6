package constituency

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("constituency not found")

type Kind string

const (
	KindParliament Kind = "parliament"
	KindDUN        Kind = "dun"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Constituency struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	ConstituencyID string         `gorm:"size:32;uniqueIndex:ux_constituencies_public_id_active" json:"constituency_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Code           string         `gorm:"size:16;index" json:"code"`
	Kind           Kind           `gorm:"type:enum('parliament','dun');default:'parliament'" json:"kind"`
	Status         Status         `gorm:"type:enum('active','inactive');default:'active'" json:"status"`
	BudgetEntries  []BudgetEntry  `gorm:"foreignKey:ConstituencyID;references:ID" json:"budget_entries,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Constituency) TableName() string { return "constituencies" }

// BudgetEntry is the yearly allocation for one constituency.
// The composite unique index enforces at most one entry per (constituency, year).
type BudgetEntry struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	ConstituencyID uint64    `gorm:"column:constituency_id;not null;uniqueIndex:ux_budget_entries_constituency_year" json:"-"`
	Year           int       `gorm:"column:year;not null;uniqueIndex:ux_budget_entries_constituency_year" json:"year"`
	Amount         float64   `gorm:"type:decimal(18,2);not null" json:"amount"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BudgetEntry) TableName() string { return "budget_entries" }
