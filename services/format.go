package services

import (
	"github.com/shopspring/decimal"
)

// FormatUSD renders an amount the way the dashboard displays money: a dollar
// sign and exactly two decimal places. Decimal arithmetic avoids the
// off-by-a-cent artifacts float formatting produces on sums.
func FormatUSD(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// SharePercent renders part's share of total as a percentage with one decimal
// place. A zero total has no meaningful shares, so it reports 0.0% instead of
// dividing by zero.
func SharePercent(part, total float64) string {
	if total == 0 {
		return "0.0%"
	}
	share := decimal.NewFromFloat(part).
		Div(decimal.NewFromFloat(total)).
		Mul(decimal.NewFromInt(100))
	return share.StringFixed(1) + "%"
}
