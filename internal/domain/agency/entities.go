package agency

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("agency not found")

// Agency is an implementing agency referenced by drafts and projects.
// Reconciliation resolves proposed agency names by exact match on Name.
type Agency struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	AgencyID  string         `gorm:"size:32;uniqueIndex:ux_agencies_public_id_active" json:"agency_id"`
	Name      string         `gorm:"size:255;not null;uniqueIndex:ux_agencies_name" json:"name"`
	Status    string         `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Agency) TableName() string { return "agencies" }
