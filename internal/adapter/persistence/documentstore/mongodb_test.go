package documentstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns an object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		s := NewMongoStore(mt.DB)

		doc := &testDoc{Name: "first"}
		id, err := s.Create(context.Background(), "quotes", doc)
		require.NoError(mt, err)
		assert.Len(mt, id, 24)
		assert.Equal(mt, id, doc.ID)
	})

	mt.Run("get found", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".quotes"
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "abc"},
			{Key: "name", Value: "first"},
		}))
		s := NewMongoStore(mt.DB)

		var got testDoc
		found, err := s.Get(context.Background(), "quotes", "abc", &got)
		require.NoError(mt, err)
		require.True(mt, found)
		assert.Equal(mt, "abc", got.ID)
		assert.Equal(mt, "first", got.Name)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".quotes", mtest.FirstBatch))
		s := NewMongoStore(mt.DB)

		found, err := s.Get(context.Background(), "quotes", "nope", &testDoc{})
		require.NoError(mt, err)
		assert.False(mt, found)
	})

	mt.Run("update returns the new document", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: "abc"},
				{Key: "name", Value: "first"},
				{Key: "flags", Value: bson.D{{Key: "a", Value: true}}},
			}},
		})
		s := NewMongoStore(mt.DB)

		var got testDoc
		found, err := s.Update(context.Background(), "jobs", "abc", map[string]any{"flags.a": true}, &got)
		require.NoError(mt, err)
		require.True(mt, found)
		assert.True(mt, got.Flags.A)
		assert.Equal(mt, "abc", got.ID)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})
		s := NewMongoStore(mt.DB)

		found, err := s.Update(context.Background(), "jobs", "nope", map[string]any{"flags.a": true}, &testDoc{})
		require.NoError(mt, err)
		assert.False(mt, found)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
			Name:    "BadValue",
		}))
		s := NewMongoStore(mt.DB)

		_, err := s.Get(context.Background(), "quotes", "abc", &testDoc{})
		assert.Error(mt, err)
	})

	mt.Run("update without fields", func(mt *mtest.T) {
		s := NewMongoStore(mt.DB)
		_, err := s.Update(context.Background(), "jobs", "abc", nil, &testDoc{})
		assert.Error(mt, err)
	})
}
