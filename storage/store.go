package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an operation addresses a document id that
// doesn't exist in the collection.
var ErrNotFound = errors.New("document not found")

// Document is one stored record: an id plus its field map.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Store is the narrow document-store surface the repository depends on.
// Implementations must support exactly the query shape the dashboard needs:
// all documents whose owner field equals a value, ordered by date descending.
// The store assigns document ids on Add.
type Store interface {
	Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	ListByOwner(ctx context.Context, collection, ownerID string) ([]Document, error)
}
