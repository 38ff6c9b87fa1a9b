package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store used in tests. Setting Err makes every
// operation fail with that error, which is how transport failures are
// simulated.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Document
	nextID      int

	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Add(_ context.Context, collection string, fields map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}

	id, err := newDocumentID()
	if err != nil {
		return "", err
	}
	s.collections[collection] = append(s.collections[collection], Document{ID: id, Fields: cloneFields(fields)})
	return id, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	docs := s.collections[collection]
	for i := range docs {
		if docs[i].ID == id {
			for k, v := range fields {
				docs[i].Fields[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	docs := s.collections[collection]
	for i := range docs {
		if docs[i].ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListByOwner(_ context.Context, collection, ownerID string) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	var docs []Document
	for _, doc := range s.collections[collection] {
		if stringField(doc.Fields, ownerField) == ownerID {
			docs = append(docs, Document{ID: doc.ID, Fields: cloneFields(doc.Fields)})
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return stringField(docs[i].Fields, dateField) > stringField(docs[j].Fields, dateField)
	})
	return docs, nil
}

func cloneFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
