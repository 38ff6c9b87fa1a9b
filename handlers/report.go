package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"fintrack/models"
	"fintrack/services"
)

type summaryResponse struct {
	models.Summary
	Formatted struct {
		TotalIncome  string `json:"totalIncome"`
		TotalExpense string `json:"totalExpense"`
		Balance      string `json:"balance"`
	} `json:"formatted"`
}

// GetSummary returns the caller's headline totals with display-ready
// formatting alongside the raw numbers.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	list := h.repo.ListByOwner(r.Context(), owner)
	if !list.OK {
		log.Printf("Error fetching transactions for summary: %s", list.Err)
	}

	var resp summaryResponse
	resp.Summary = services.Summarize(list.Transactions)
	resp.Formatted.TotalIncome = services.FormatUSD(resp.TotalIncome)
	resp.Formatted.TotalExpense = services.FormatUSD(resp.TotalExpense)
	resp.Formatted.Balance = services.FormatUSD(resp.Balance)
	writeJSON(w, http.StatusOK, resp)
}

type categorySlice struct {
	Category       string  `json:"category"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formattedTotal"`
	Share          string  `json:"share"`
}

// GetCategoryReport returns the per-category breakdown driving the pie
// chart. The type query parameter selects expense (default) or income.
func (h *Handler) GetCategoryReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	txType := r.URL.Query().Get("type")
	if txType == "" {
		txType = models.TypeExpense
	}
	if txType != models.TypeExpense && txType != models.TypeIncome {
		http.Error(w, "type must be expense or income", http.StatusBadRequest)
		return
	}

	list := h.repo.ListByOwner(r.Context(), owner)
	if !list.OK {
		log.Printf("Error fetching transactions for category report: %s", list.Err)
	}

	totals := services.CategoryTotals(list.Transactions, txType)
	var grand float64
	for _, ct := range totals {
		grand += ct.Total
	}

	slices := make([]categorySlice, 0, len(totals))
	for _, ct := range totals {
		slices = append(slices, categorySlice{
			Category:       ct.Category,
			Total:          ct.Total,
			FormattedTotal: services.FormatUSD(ct.Total),
			Share:          services.SharePercent(ct.Total, grand),
		})
	}
	writeJSON(w, http.StatusOK, slices)
}

// GetMonthlyReport returns the calendar-month rollup driving the bar chart,
// oldest month first. The months query parameter defaults to six.
func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	months := services.DefaultRollupMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 60 {
			http.Error(w, "months must be a number between 1 and 60", http.StatusBadRequest)
			return
		}
		months = parsed
	}

	list := h.repo.ListByOwner(r.Context(), owner)
	if !list.OK {
		log.Printf("Error fetching transactions for monthly report: %s", list.Err)
	}

	writeJSON(w, http.StatusOK, services.MonthlyRollup(list.Transactions, time.Now(), months))
}
