package services

import (
	"strings"
	"time"

	"fintrack/models"
)

// Filter narrows a transaction list by the three display criteria, combined
// with AND. It preserves input order and never mutates its input; applying
// the same filter twice yields the same result.
func Filter(transactions []models.Transaction, f models.TransactionFilter) []models.Transaction {
	if f.IsDefault() {
		out := make([]models.Transaction, len(transactions))
		copy(out, transactions)
		return out
	}

	start, hasStart := parseBound(f.StartDate)
	end, hasEnd := parseBound(f.EndDate)
	search := strings.ToLower(f.Search)

	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Type != "" && f.Type != models.TypeAll && t.Type != f.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.Category), search) {
			continue
		}
		if hasStart || hasEnd {
			d, ok := t.ParsedDate()
			if !ok {
				// A date-constrained view can't place a record with a
				// malformed date, so it is left out.
				continue
			}
			if hasStart && d.Before(start) {
				continue
			}
			if hasEnd && d.After(end) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// parseBound treats empty or malformed bounds as unset, leaving that side of
// the range unconstrained.
func parseBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
