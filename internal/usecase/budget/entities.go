package budget

// Caller carries the authenticated caller's constituency association.
// Supervisory roles span many constituencies and have no association of
// their own; they are exempt from admission checks.
type Caller struct {
	ConstituencyID *uint64
}

// Summary is the ledger view for one constituency and year.
type Summary struct {
	Allocated float64 `json:"allocated"`
	Committed float64 `json:"committed"`
	Remaining float64 `json:"remaining"`
}

// AggregateSummary sums the ledger across all active constituencies.
type AggregateSummary struct {
	Allocated      float64 `json:"allocated"`
	Committed      float64 `json:"committed"`
	Remaining      float64 `json:"remaining"`
	Constituencies int     `json:"constituencies"`
}
