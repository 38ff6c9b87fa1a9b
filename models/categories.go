package models

// Category lists offered by the creation form, keyed by transaction type.
// Categories are stored as free text and are not enforced by the store; these
// lists only drive the form's select options and defaults.
var (
	ExpenseCategories = []string{
		"Food & Dining",
		"Shopping",
		"Housing",
		"Transportation",
		"Utilities",
		"Entertainment",
		"Healthcare",
		"Education",
		"Personal Care",
		"Travel",
		"Other",
	}
	IncomeCategories = []string{
		"Salary",
		"Business",
		"Investments",
		"Gifts",
		"Other",
	}
)

// CategoriesForType returns the category list for a transaction type, or nil
// for unknown types.
func CategoriesForType(txType string) []string {
	switch txType {
	case TypeExpense:
		return ExpenseCategories
	case TypeIncome:
		return IncomeCategories
	}
	return nil
}

// DefaultCategory is the form's initial selection for a transaction type.
func DefaultCategory(txType string) string {
	if txType == TypeIncome {
		return "Salary"
	}
	return "Food & Dining"
}
