package handlers

import (
	"net/http"

	"fintrack/models"
)

type categoryLists struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}

// GetCategories returns the category lists the creation form offers per
// transaction type. Categories are form suggestions, not a server-enforced
// enumeration.
func GetCategories(w http.ResponseWriter, r *http.Request) {
	if txType := r.URL.Query().Get("type"); txType != "" {
		cats := models.CategoriesForType(txType)
		if cats == nil {
			http.Error(w, "type must be expense or income", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"categories": cats,
			"default":    models.DefaultCategory(txType),
		})
		return
	}

	writeJSON(w, http.StatusOK, categoryLists{
		Expense: models.ExpenseCategories,
		Income:  models.IncomeCategories,
	})
}
