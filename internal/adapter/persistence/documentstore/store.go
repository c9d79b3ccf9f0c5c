// Package documentstore is a small collection-keyed document store with
// pluggable backends. Documents are created with a store-assigned id, read
// back by id and partially updated by field path.
package documentstore

import (
	"context"
	"strings"
)

const (
	CollectionQuotes      = "quotes"
	CollectionJobs        = "jobs"
	CollectionLinenOrders = "linen_orders"
)

// Document is a storage record. SetID receives the store-assigned id on
// create and on every read.
type Document interface {
	SetID(id string)
}

// Store persists documents by collection.
//
// Get and Update report false, with a nil error, when no document has the id.
// Update field keys are dot separated paths ("checklist.trashOut"); each write
// is applied as one document update and concurrent writes to the same field
// are last-write-wins.
type Store interface {
	Create(ctx context.Context, collection string, doc Document) (string, error)
	Get(ctx context.Context, collection, id string, out Document) (bool, error)
	Update(ctx context.Context, collection, id string, fields map[string]any, out Document) (bool, error)
}

func splitPath(path string) []string {
	return strings.Split(path, ".")
}
