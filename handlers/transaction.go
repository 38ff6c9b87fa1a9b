package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"fintrack/models"
	"fintrack/repository"
	"fintrack/services"

	"github.com/gorilla/mux"
)

// GetTransactions returns the caller's transactions, newest first. Optional
// query parameters (type, q, startDate, endDate) run the display filter
// server-side. A store failure degrades to an empty list so the dashboard
// still renders.
func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	list := h.repo.ListByOwner(r.Context(), owner)
	if !list.OK {
		log.Printf("Error fetching transactions for %s: %s", owner, list.Err)
	}

	f := models.TransactionFilter{
		Type:      r.URL.Query().Get("type"),
		Search:    r.URL.Query().Get("q"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	writeJSON(w, http.StatusOK, services.Filter(list.Transactions, f))
}

// AddTransaction validates and stores a new transaction for the caller.
func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var t models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t.OwnerID = owner

	if err := t.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.repo.Create(r.Context(), t)
	if !res.OK {
		http.Error(w, res.Err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// UpdateTransaction replaces the editable fields of one of the caller's
// transactions.
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	var t models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t.OwnerID = owner

	if err := t.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.repo.Update(r.Context(), id, t)
	writeResult(w, res)
}

// DeleteTransaction removes one of the caller's transactions by id.
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	res := h.repo.Delete(r.Context(), mux.Vars(r)["id"])
	writeResult(w, res)
}

func writeResult(w http.ResponseWriter, res repository.Result) {
	switch {
	case res.OK:
		writeJSON(w, http.StatusOK, res)
	case res.NotFound:
		http.Error(w, res.Err, http.StatusNotFound)
	default:
		http.Error(w, res.Err, http.StatusInternalServerError)
	}
}
