// Package services holds the computation core of the tracker: summary and
// report aggregation, the list filter pipeline, and the dashboard controller
// that ties them to the repository. The aggregation and filter functions are
// pure and safe to call from anywhere.
package services

import (
	"time"

	"fintrack/models"
)

// DefaultRollupMonths is how many months the dashboard's monthly chart spans.
const DefaultRollupMonths = 6

// Summarize computes the headline totals over a transaction list. Records
// whose type is neither income nor expense contribute to neither total.
func Summarize(transactions []models.Transaction) models.Summary {
	var s models.Summary
	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			s.TotalIncome += t.Amount
		case models.TypeExpense:
			s.TotalExpense += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

// CategoryTotals groups transactions of the given type by category and sums
// the amounts per group. Groups appear in the order their category first
// occurs in the input, which keeps chart slices stable across refreshes.
func CategoryTotals(transactions []models.Transaction, txType string) []models.CategoryTotal {
	index := make(map[string]int)
	var totals []models.CategoryTotal
	for _, t := range transactions {
		if t.Type != txType {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, models.CategoryTotal{Category: t.Category})
		}
		totals[i].Total += t.Amount
	}
	return totals
}

// MonthlyRollup buckets transactions into `months` consecutive calendar
// months ending at the month containing ref, oldest first. Every bucket is
// present in the output even when empty. Records whose date doesn't parse
// are left out of all buckets.
func MonthlyRollup(transactions []models.Transaction, ref time.Time, months int) []models.MonthSummary {
	if months <= 0 {
		months = DefaultRollupMonths
	}

	rollup := make([]models.MonthSummary, 0, months)
	for i := months - 1; i >= 0; i-- {
		bucket := time.Date(ref.Year(), ref.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		m := models.MonthSummary{Month: bucket.Format(models.MonthLabelLayout)}

		for _, t := range transactions {
			d, ok := t.ParsedDate()
			if !ok || d.Year() != bucket.Year() || d.Month() != bucket.Month() {
				continue
			}
			switch t.Type {
			case models.TypeIncome:
				m.Income += t.Amount
			case models.TypeExpense:
				m.Expense += t.Amount
			}
		}
		m.Balance = m.Income - m.Expense
		rollup = append(rollup, m)
	}
	return rollup
}
