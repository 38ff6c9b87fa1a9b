package services

import (
	"context"
	"sync"
	"time"

	"fintrack/models"
	"fintrack/repository"
)

// TransactionSource is the repository surface the dashboard needs.
// *repository.Transactions satisfies it; tests substitute stubs.
type TransactionSource interface {
	Create(ctx context.Context, t models.Transaction) repository.Result
	Update(ctx context.Context, id string, t models.Transaction) repository.Result
	Delete(ctx context.Context, id string) repository.Result
	ListByOwner(ctx context.Context, ownerID string) repository.ListResult
}

// DashboardState tracks where the controller is in its fetch cycle.
type DashboardState int

const (
	StateIdle DashboardState = iota
	StateLoading
	StateReady
)

// Dashboard owns the view state for one signed-in session: the transaction
// cache, the current filter criteria, and the fetch cycle. Every successful
// mutation triggers a full refetch so the cache always reflects the store.
//
// Fetches are sequence-numbered. A completion whose sequence is no longer
// current belongs to a superseded refresh and is discarded, so a slow old
// reply can never overwrite a newer cache.
type Dashboard struct {
	source TransactionSource

	mu           sync.Mutex
	state        DashboardState
	owner        string
	seq          uint64
	transactions []models.Transaction
	filter       models.TransactionFilter
	fetchErr     string
}

func NewDashboard(source TransactionSource) *Dashboard {
	return &Dashboard{source: source, state: StateIdle}
}

// SetOwner records the signed-in user and refetches their transactions. An
// empty owner (signed out) clears the cache.
func (d *Dashboard) SetOwner(ctx context.Context, ownerID string) {
	d.mu.Lock()
	d.owner = ownerID
	d.mu.Unlock()
	d.Refresh(ctx)
}

// Refresh fetches the owner's transactions and installs them in the cache,
// unless a newer refresh was started in the meantime. Safe to call from any
// goroutine.
func (d *Dashboard) Refresh(ctx context.Context) {
	seq, owner := d.beginFetch()
	if owner == "" {
		d.settleFetch(seq, repository.ListResult{Transactions: []models.Transaction{}, OK: true})
		return
	}
	d.settleFetch(seq, d.source.ListByOwner(ctx, owner))
}

func (d *Dashboard) beginFetch() (uint64, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.state = StateLoading
	return d.seq, d.owner
}

// settleFetch applies a completed fetch. It reports false when the result was
// stale and dropped.
func (d *Dashboard) settleFetch(seq uint64, res repository.ListResult) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		return false
	}
	d.transactions = res.Transactions
	d.fetchErr = res.Err
	d.state = StateReady
	return true
}

// CreateTransaction validates and stores a new transaction for the current
// owner, then refetches on success. The result carries any validation or
// store error message; the cache is untouched on failure.
func (d *Dashboard) CreateTransaction(ctx context.Context, t models.Transaction) repository.Result {
	d.mu.Lock()
	t.OwnerID = d.owner
	d.mu.Unlock()

	if err := t.Validate(); err != nil {
		return repository.Result{Err: err.Error()}
	}
	res := d.source.Create(ctx, t)
	if res.OK {
		d.Refresh(ctx)
	}
	return res
}

// UpdateTransaction saves an edit to an existing transaction and refetches on
// success.
func (d *Dashboard) UpdateTransaction(ctx context.Context, id string, t models.Transaction) repository.Result {
	d.mu.Lock()
	t.OwnerID = d.owner
	d.mu.Unlock()

	if err := t.Validate(); err != nil {
		return repository.Result{Err: err.Error()}
	}
	res := d.source.Update(ctx, id, t)
	if res.OK {
		d.Refresh(ctx)
	}
	return res
}

// DeleteTransaction removes a transaction and refetches on success.
func (d *Dashboard) DeleteTransaction(ctx context.Context, id string) repository.Result {
	res := d.source.Delete(ctx, id)
	if res.OK {
		d.Refresh(ctx)
	}
	return res
}

// SetFilter replaces the display criteria. Criteria changes never touch the
// cache; Visible derives the subset on demand.
func (d *Dashboard) SetFilter(f models.TransactionFilter) {
	d.mu.Lock()
	d.filter = f
	d.mu.Unlock()
}

// State reports the controller's position in the fetch cycle.
func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// FetchError returns the message from the last failed fetch, if any. The
// dashboard still renders (empty) in that case.
func (d *Dashboard) FetchError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fetchErr
}

// Transactions returns a copy of the full cache, newest first.
func (d *Dashboard) Transactions() []models.Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Transaction, len(d.transactions))
	copy(out, d.transactions)
	return out
}

// Visible returns the cache narrowed by the current filter criteria.
func (d *Dashboard) Visible() []models.Transaction {
	d.mu.Lock()
	transactions := d.transactions
	f := d.filter
	d.mu.Unlock()
	return Filter(transactions, f)
}

// Summary aggregates the full cache; the headline numbers ignore the list
// filter, matching the original dashboard.
func (d *Dashboard) Summary() models.Summary {
	return Summarize(d.Transactions())
}

// CategoryBreakdown aggregates the full cache by category for one type.
func (d *Dashboard) CategoryBreakdown(txType string) []models.CategoryTotal {
	return CategoryTotals(d.Transactions(), txType)
}

// MonthlyChart rolls the full cache up into the last six calendar months.
func (d *Dashboard) MonthlyChart() []models.MonthSummary {
	return MonthlyRollup(d.Transactions(), time.Now(), DefaultRollupMonths)
}
