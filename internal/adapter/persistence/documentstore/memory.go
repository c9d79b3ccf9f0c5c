package documentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps JSON encoded documents in process memory. It backs local
// runs with STORE_DRIVER=memory and the persistence tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Create(_ context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	doc.SetID(id)

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("memory encode %s: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.docs[collection]
	if !ok {
		coll = make(map[string][]byte)
		s.docs[collection] = coll
	}
	coll[id] = raw
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string, out Document) (bool, error) {
	s.mu.RLock()
	raw, ok := s.docs[collection][id]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("memory decode %s/%s: %w", collection, id, err)
	}
	out.SetID(id)
	return true, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]any, out Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.docs[collection][id]
	if !ok {
		return false, nil
	}

	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return false, fmt.Errorf("memory decode %s/%s: %w", collection, id, err)
	}
	for path, v := range fields {
		setPath(tree, splitPath(path), v)
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return false, fmt.Errorf("memory encode %s/%s: %w", collection, id, err)
	}
	s.docs[collection][id] = raw

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("memory decode %s/%s: %w", collection, id, err)
	}
	out.SetID(id)
	return true, nil
}

func setPath(tree map[string]any, segments []string, v any) {
	for _, seg := range segments[:len(segments)-1] {
		next, ok := tree[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			tree[seg] = next
		}
		tree = next
	}
	tree[segments[len(segments)-1]] = v
}
