package documentstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFlags struct {
	A bool `json:"a"`
	B bool `json:"b"`
}

type testDoc struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Flags     testFlags `json:"flags"`
	UpdatedAt string    `json:"updatedAt"`
}

func (d *testDoc) SetID(id string) { d.ID = id }

func TestMemoryStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	doc := &testDoc{Name: "first"}
	id, err := s.Create(ctx, "things", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, doc.ID)

	var got testDoc
	found, err := s.Get(ctx, "things", id, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *doc, got)

	found, err = s.Get(ctx, "other", id, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	ids := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id, err := s.Create(ctx, "things", &testDoc{})
		require.NoError(t, err)
		ids[id] = struct{}{}
	}
	assert.Len(t, ids, 50)
}

func TestMemoryStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Create(ctx, "things", &testDoc{Name: "n", Flags: testFlags{A: true}})
	require.NoError(t, err)

	var got testDoc
	found, err := s.Update(ctx, "things", id, map[string]any{
		"flags.b":   true,
		"updatedAt": "2026-01-01T00:00:00Z",
	}, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testDoc{
		ID:        id,
		Name:      "n",
		Flags:     testFlags{A: true, B: true},
		UpdatedAt: "2026-01-01T00:00:00Z",
	}, got)

	var reread testDoc
	_, err = s.Get(ctx, "things", id, &reread)
	require.NoError(t, err)
	assert.Equal(t, got, reread)
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	s := NewMemoryStore()
	var got testDoc
	found, err := s.Update(context.Background(), "things", "nope", map[string]any{"flags.a": true}, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_ConcurrentFieldUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id, err := s.Create(ctx, "things", &testDoc{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, field := range []string{"flags.a", "flags.b"} {
		wg.Add(1)
		go func(field string) {
			defer wg.Done()
			var out testDoc
			_, err := s.Update(ctx, "things", id, map[string]any{field: true}, &out)
			assert.NoError(t, err)
		}(field)
	}
	wg.Wait()

	var got testDoc
	_, err = s.Get(ctx, "things", id, &got)
	require.NoError(t, err)
	assert.Equal(t, testFlags{A: true, B: true}, got.Flags)
}
