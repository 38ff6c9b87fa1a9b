package handlers

import (
	"encoding/json"
	"net/http"

	"fintrack/middleware"
	"fintrack/repository"
)

// Handler serves the transaction and report endpoints. The repository is
// injected so tests run against an in-memory store.
type Handler struct {
	repo *repository.Transactions
}

func New(repo *repository.Transactions) *Handler {
	return &Handler{repo: repo}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// requireOwner pulls the authenticated owner id out of the request, answering
// 401 itself when there is none.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := middleware.GetUserIDFromContext(r)
	if owner == "" {
		http.Error(w, "Unauthorized: no user ID found", http.StatusUnauthorized)
		return "", false
	}
	return owner, true
}

// HealthCheck reports liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
