package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/models"
)

var errFake = errors.New("fake store failure")

func expense(description, date string, amount float64) models.Transaction {
	return models.Transaction{
		Amount:      amount,
		Description: description,
		Category:    "Food & Dining",
		Date:        date,
		Type:        models.TypeExpense,
	}
}

func TestAddTransaction(t *testing.T) {
	router, store := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/transactions", expense("Lunch", "2024-01-10", 25)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	docs, err := store.ListByOwner(context.Background(), "transactions", TestUserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(docs))
	}
	if docs[0].Fields["userId"] != TestUserID {
		t.Errorf("expected owner from auth context, got %v", docs[0].Fields["userId"])
	}
	if _, ok := docs[0].Fields["createdAt"]; !ok {
		t.Error("expected createdAt to be stamped")
	}
}

func TestAddTransactionValidation(t *testing.T) {
	router, store := newTestServer()

	bad := expense("", "2024-01-10", 25)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/transactions", bad))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	// Validation failures never reach the store.
	docs, _ := store.ListByOwner(context.Background(), "transactions", TestUserID)
	if len(docs) != 0 {
		t.Errorf("expected no stored transactions, got %d", len(docs))
	}
}

func TestGetTransactions(t *testing.T) {
	router, store := newTestServer()
	seedTransaction(store, TestUserID, expense("Groceries", "2024-01-10", 40))
	seedTransaction(store, TestUserID, expense("Rent", "2024-02-01", 900))
	seedTransaction(store, "someone-else", expense("Their lunch", "2024-01-15", 10))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/transactions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var got []models.Transaction
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions for the caller, got %d", len(got))
	}
	if got[0].Date != "2024-02-01" {
		t.Errorf("expected newest first, got %s", got[0].Date)
	}
}

func TestGetTransactionsWithFilters(t *testing.T) {
	router, store := newTestServer()
	seedTransaction(store, TestUserID, expense("Groceries", "2024-01-10", 40))
	salary := models.Transaction{Amount: 1000, Description: "January salary", Category: "Salary", Date: "2024-01-05", Type: models.TypeIncome}
	seedTransaction(store, TestUserID, salary)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/transactions?type=income", nil))
	var got []models.Transaction
	json.NewDecoder(w.Body).Decode(&got)
	if len(got) != 1 || got[0].Type != models.TypeIncome {
		t.Errorf("unexpected type-filtered result: %+v", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/transactions?q=sal", nil))
	got = nil
	json.NewDecoder(w.Body).Decode(&got)
	if len(got) != 1 || got[0].Category != "Salary" {
		t.Errorf("unexpected search result: %+v", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/transactions?startDate=2024-01-06", nil))
	got = nil
	json.NewDecoder(w.Body).Decode(&got)
	if len(got) != 1 || got[0].Description != "Groceries" {
		t.Errorf("unexpected date-filtered result: %+v", got)
	}
}

func TestGetTransactionsDegradesOnStoreFailure(t *testing.T) {
	router, store := newTestServer()
	store.Err = errFake

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/transactions", nil))

	// Reads favor availability: an empty 200, not an error page.
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var got []models.Transaction
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}

func TestUpdateTransaction(t *testing.T) {
	router, store := newTestServer()
	id := seedTransaction(store, TestUserID, expense("Lunch", "2024-01-10", 25))

	edited := expense("Dinner", "2024-01-11", 60)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/transactions/"+id, edited))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	docs, _ := store.ListByOwner(context.Background(), "transactions", TestUserID)
	if docs[0].Fields["description"] != "Dinner" {
		t.Errorf("expected updated description, got %v", docs[0].Fields["description"])
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	router, _ := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/transactions/no-such-id", expense("Dinner", "2024-01-11", 60)))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteTransaction(t *testing.T) {
	router, store := newTestServer()
	id := seedTransaction(store, TestUserID, expense("Lunch", "2024-01-10", 25))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/transactions/"+id, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/transactions/"+id, nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 on second delete, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}
