package models

// Transaction types
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
	TypeAll     = "all"
)

// DateLayout is the calendar-date format transactions are stored with.
// There is no time-of-day component; the date a transaction happened is
// independent of when it was entered.
const DateLayout = "2006-01-02"

// MonthLabelLayout is the label format used by the monthly rollup.
const MonthLabelLayout = "Jan 2006"
