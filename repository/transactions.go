// Package repository adapts the document store into owner-scoped transaction
// operations. Every operation reports its outcome as a value; callers never
// see a panic and mutations are all-or-nothing at the store.
package repository

import (
	"context"
	"fmt"
	"time"

	"fintrack/models"
	"fintrack/storage"
)

// Collection is the store collection transactions live in.
const Collection = "transactions"

// Result is the outcome of a mutating operation. NotFound distinguishes a
// missing id from a transport failure so callers can answer 404 vs 500.
type Result struct {
	OK       bool   `json:"ok"`
	NotFound bool   `json:"-"`
	Err      string `json:"error,omitempty"`
}

// ListResult is the outcome of a list operation. On failure Transactions is
// empty rather than nil so the dashboard can still render.
type ListResult struct {
	Transactions []models.Transaction `json:"transactions"`
	OK           bool                 `json:"ok"`
	Err          string               `json:"error,omitempty"`
}

func failure(format string, args ...interface{}) Result {
	return Result{Err: fmt.Sprintf(format, args...)}
}

// Transactions wraps a document store with transaction-shaped operations.
// The store is injected so tests can substitute an in-memory fake.
type Transactions struct {
	store storage.Store
}

func NewTransactions(store storage.Store) *Transactions {
	return &Transactions{store: store}
}

// Create stores a new transaction. The store assigns the id; CreatedAt is
// stamped here and never read back for business logic.
func (r *Transactions) Create(ctx context.Context, t models.Transaction) Result {
	fields := map[string]interface{}{
		"userId":      t.OwnerID,
		"amount":      t.Amount,
		"description": t.Description,
		"category":    t.Category,
		"date":        t.Date,
		"type":        t.Type,
		"createdAt":   time.Now(),
	}
	if _, err := r.store.Add(ctx, Collection, fields); err != nil {
		return failure("could not add transaction: %v", err)
	}
	return Result{OK: true}
}

// Update replaces the editable fields of an existing transaction. Owner and
// createdAt are never touched by an edit.
func (r *Transactions) Update(ctx context.Context, id string, t models.Transaction) Result {
	fields := map[string]interface{}{
		"amount":      t.Amount,
		"description": t.Description,
		"category":    t.Category,
		"date":        t.Date,
		"type":        t.Type,
	}
	err := r.store.Update(ctx, Collection, id, fields)
	if err == storage.ErrNotFound {
		return Result{NotFound: true, Err: fmt.Sprintf("transaction %s not found", id)}
	}
	if err != nil {
		return failure("could not update transaction: %v", err)
	}
	return Result{OK: true}
}

// Delete removes a transaction by id.
func (r *Transactions) Delete(ctx context.Context, id string) Result {
	err := r.store.Delete(ctx, Collection, id)
	if err == storage.ErrNotFound {
		return Result{NotFound: true, Err: fmt.Sprintf("transaction %s not found", id)}
	}
	if err != nil {
		return failure("could not delete transaction: %v", err)
	}
	return Result{OK: true}
}

// ListByOwner returns the owner's transactions ordered by date descending.
// A store failure degrades to an empty list with the error recorded, so a
// backend outage reads as "no transactions yet" rather than blocking the UI.
func (r *Transactions) ListByOwner(ctx context.Context, ownerID string) ListResult {
	docs, err := r.store.ListByOwner(ctx, Collection, ownerID)
	if err != nil {
		return ListResult{
			Transactions: []models.Transaction{},
			Err:          fmt.Sprintf("could not fetch transactions: %v", err),
		}
	}

	transactions := make([]models.Transaction, 0, len(docs))
	for _, doc := range docs {
		transactions = append(transactions, decodeTransaction(doc))
	}
	return ListResult{Transactions: transactions, OK: true}
}

// decodeTransaction maps a stored document onto a Transaction. Field types
// vary by adapter (Firestore returns time.Time and int64, the JSON-backed
// stores return strings and float64), so decoding is tolerant rather than
// strict.
func decodeTransaction(doc storage.Document) models.Transaction {
	t := models.Transaction{ID: doc.ID}
	t.OwnerID, _ = doc.Fields["userId"].(string)
	t.Description, _ = doc.Fields["description"].(string)
	t.Category, _ = doc.Fields["category"].(string)
	t.Date, _ = doc.Fields["date"].(string)
	t.Type, _ = doc.Fields["type"].(string)

	switch v := doc.Fields["amount"].(type) {
	case float64:
		t.Amount = v
	case int64:
		t.Amount = float64(v)
	case int:
		t.Amount = float64(v)
	}

	switch v := doc.Fields["createdAt"].(type) {
	case time.Time:
		t.CreatedAt = v
	case string:
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			t.CreatedAt = parsed
		}
	}

	return t
}
