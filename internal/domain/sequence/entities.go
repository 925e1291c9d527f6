package sequence

import "time"

// Sequence is the per-(kind, year) counter behind the numbering authority.
// Issuance locks the row, so two callers can never read the same Last.
type Sequence struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Kind      string    `gorm:"size:16;not null;uniqueIndex:ux_sequences_kind_year"`
	Year      int       `gorm:"not null;uniqueIndex:ux_sequences_kind_year"`
	Last      int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Sequence) TableName() string { return "sequences" }
