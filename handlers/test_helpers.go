package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"fintrack/middleware"
	"fintrack/models"
	"fintrack/repository"
	"fintrack/storage"

	"github.com/gorilla/mux"
)

// TestUserID is the owner handler tests run as. With no Firebase credentials
// configured, the auth middleware runs in dev mode and stamps every request
// with the fixed dev user, so seeding under this id makes requests see the
// data.
const TestUserID = middleware.DevUserID

// newTestServer wires the full route table (auth middleware included) over
// an in-memory store.
func newTestServer() (*mux.Router, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	h := New(repository.NewTransactions(store))
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r, store
}

// jsonRequest builds a request with an optional JSON body.
func jsonRequest(method, url string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, url, nil)
	}
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(method, url, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// seedTransaction inserts a record directly into the store.
func seedTransaction(store *storage.MemoryStore, owner string, t models.Transaction) string {
	id, _ := store.Add(context.Background(), repository.Collection, map[string]interface{}{
		"userId":      owner,
		"amount":      t.Amount,
		"description": t.Description,
		"category":    t.Category,
		"date":        t.Date,
		"type":        t.Type,
	})
	return id
}
