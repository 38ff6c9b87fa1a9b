package handlers

import (
	"fintrack/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires every API route onto the router. Everything except
// the health check sits behind the auth middleware.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", HealthCheck).Methods("GET", "OPTIONS")

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/transactions", h.GetTransactions).Methods("GET")
	protected.HandleFunc("/transactions", h.AddTransaction).Methods("POST")
	protected.HandleFunc("/transactions/{id}", h.UpdateTransaction).Methods("PUT")
	protected.HandleFunc("/transactions/{id}", h.DeleteTransaction).Methods("DELETE")

	protected.HandleFunc("/categories", GetCategories).Methods("GET")

	protected.HandleFunc("/reports/summary", h.GetSummary).Methods("GET")
	protected.HandleFunc("/reports/categories", h.GetCategoryReport).Methods("GET")
	protected.HandleFunc("/reports/monthly", h.GetMonthlyReport).Methods("GET")
}
