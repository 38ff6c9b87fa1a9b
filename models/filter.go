package models

// TransactionFilter narrows a transaction list for display. The three
// criteria are independent and combined with AND. Zero values are
// unconstrained: TypeAll (or empty) passes every type, empty search passes
// everything, an empty date bound leaves that side open.
type TransactionFilter struct {
	Type      string `json:"type"`
	Search    string `json:"search"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// IsDefault reports whether the filter would pass every transaction.
func (f TransactionFilter) IsDefault() bool {
	return (f.Type == "" || f.Type == TypeAll) && f.Search == "" && f.StartDate == "" && f.EndDate == ""
}
