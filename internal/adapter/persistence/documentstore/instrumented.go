package documentstore

import (
	"context"
	"time"

	"turnover_service/pkg/metrics"
)

// InstrumentedStore records operation count, latency and errors for every
// call on the wrapped store.
type InstrumentedStore struct {
	next    Store
	metrics *metrics.Metrics
}

var _ Store = (*InstrumentedStore)(nil)

func NewInstrumentedStore(next Store, m *metrics.Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: m}
}

func (s *InstrumentedStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	start := time.Now()
	id, err := s.next.Create(ctx, collection, doc)
	s.metrics.ObserveStore(collection, "create", time.Since(start), err)
	if err == nil {
		s.metrics.DocumentCreated(collection)
	}
	return id, err
}

func (s *InstrumentedStore) Get(ctx context.Context, collection, id string, out Document) (bool, error) {
	start := time.Now()
	found, err := s.next.Get(ctx, collection, id, out)
	s.metrics.ObserveStore(collection, "get", time.Since(start), err)
	return found, err
}

func (s *InstrumentedStore) Update(ctx context.Context, collection, id string, fields map[string]any, out Document) (bool, error) {
	start := time.Now()
	found, err := s.next.Update(ctx, collection, id, fields, out)
	s.metrics.ObserveStore(collection, "update", time.Since(start), err)
	return found, err
}
