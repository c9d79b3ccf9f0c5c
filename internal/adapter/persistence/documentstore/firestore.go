package documentstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore maps each collection to a top level Firestore collection
// and uses Firestore's auto-generated document ids.
type FirestoreStore struct {
	client *firestore.Client
}

var _ Store = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	ref := s.client.Collection(collection).NewDoc()
	doc.SetID(ref.ID)

	if _, err := ref.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("firestore create %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string, out Document) (bool, error) {
	ref := s.client.Collection(collection).Doc(id)
	if ref == nil {
		// not a valid document id, so nothing can be stored under it
		return false, nil
	}

	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("firestore get %s/%s: %w", collection, id, err)
	}
	if err := snap.DataTo(out); err != nil {
		return false, fmt.Errorf("firestore decode %s/%s: %w", collection, id, err)
	}
	out.SetID(id)
	return true, nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]any, out Document) (bool, error) {
	ref := s.client.Collection(collection).Doc(id)
	if ref == nil {
		return false, nil
	}
	if len(fields) == 0 {
		return false, fmt.Errorf("firestore update %s/%s: no fields to update", collection, id)
	}

	updates := make([]firestore.Update, 0, len(fields))
	for path, v := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: v})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("firestore update %s/%s: %w", collection, id, err)
	}
	return s.Get(ctx, collection, id, out)
}
