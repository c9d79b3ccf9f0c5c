package documentstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore maps each collection to a MongoDB collection. Ids are ObjectID
// hex strings stored in _id.
type MongoStore struct {
	db *mongo.Database
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	id := primitive.NewObjectID().Hex()
	doc.SetID(id)

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("mongodb insert %s: %w", collection, err)
	}
	return id, nil
}

func (s *MongoStore) Get(ctx context.Context, collection, id string, out Document) (bool, error) {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mongodb find %s/%s: %w", collection, id, err)
	}
	out.SetID(id)
	return true, nil
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, fields map[string]any, out Document) (bool, error) {
	if len(fields) == 0 {
		return false, fmt.Errorf("mongodb update %s/%s: no fields to update", collection, id)
	}

	set := bson.M{}
	for path, v := range fields {
		set[path] = v
	}

	err := s.db.Collection(collection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mongodb update %s/%s: %w", collection, id, err)
	}
	out.SetID(id)
	return true, nil
}
