package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetCategories(t *testing.T) {
	router, _ := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var lists struct {
		Expense []string `json:"expense"`
		Income  []string `json:"income"`
	}
	if err := json.NewDecoder(w.Body).Decode(&lists); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(lists.Expense) != 11 || len(lists.Income) != 5 {
		t.Errorf("unexpected list sizes: %d expense, %d income", len(lists.Expense), len(lists.Income))
	}
}

func TestGetCategoriesByType(t *testing.T) {
	router, _ := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/categories?type=income", nil))

	var resp struct {
		Categories []string `json:"categories"`
		Default    string   `json:"default"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Default != "Salary" {
		t.Errorf("expected default Salary, got %q", resp.Default)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/categories?type=transfer", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown type, got %d", w.Code)
	}
}
