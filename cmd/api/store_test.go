package main

import (
	"context"
	"testing"

	"turnover_service/internal/adapter/persistence/documentstore"
	"turnover_service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDocumentStore_Memory(t *testing.T) {
	store, closeFn, err := openDocumentStore(context.Background(), config.StoreConfig{Driver: config.DriverMemory}, nil)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &documentstore.InstrumentedStore{}, store)
}

func TestOpenDocumentStore_UnknownDriver(t *testing.T) {
	_, _, err := openDocumentStore(context.Background(), config.StoreConfig{Driver: "sqlite"}, nil)
	assert.Error(t, err)
}

func TestOpenDocumentStore_FirestoreNeedsProject(t *testing.T) {
	_, _, err := openDocumentStore(context.Background(), config.StoreConfig{Driver: config.DriverFirestore}, nil)
	assert.Error(t, err)
}
