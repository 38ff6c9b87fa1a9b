package models

// Summary holds the headline totals shown on the dashboard.
type Summary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// CategoryTotal is one slice of the per-category breakdown. Entries keep the
// order categories first appear in the transaction list.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthSummary is one calendar-month bucket of the monthly rollup.
type MonthSummary struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
