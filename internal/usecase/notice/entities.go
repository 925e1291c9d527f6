package notice

import "time"

type EntryInput struct {
	// RecordNo references an existing promoted record; empty means the
	// entry proposes a brand-new project.
	RecordNo           string
	ProposedName       string
	ProposedCost       string
	ProposedAgencyName string
}

type CreateInput struct {
	ConstituencyID uint64
	NoticeDate     time.Time
	Entries        []EntryInput
}

type ApproveInput struct {
	NoticeID   string
	ApproverID string // 32-char hex officer id
	Remarks    string
}

type EntryDTO struct {
	EntryID            string  `json:"entry_id"`
	RecordNo           string  `json:"record_no,omitempty"`
	OriginalName       string  `json:"original_name,omitempty"`
	OriginalCost       float64 `json:"original_cost,omitempty"`
	OriginalAgencyName string  `json:"original_agency_name,omitempty"`
	ProposedName       string  `json:"proposed_name,omitempty"`
	ProposedCost       string  `json:"proposed_cost,omitempty"`
	ProposedAgencyName string  `json:"proposed_agency_name,omitempty"`
}

type NoticeDTO struct {
	NoticeID   string     `json:"notice_id"`
	NoticeNo   string     `json:"notice_no"`
	NoticeDate time.Time  `json:"notice_date"`
	Status     string     `json:"status"`
	Entries    []EntryDTO `json:"entries,omitempty"`
}
