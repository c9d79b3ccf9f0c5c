package documentstore

import (
	"context"
	"net"
	"strings"
	"testing"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeFirestore serves one stored document, "things/abc", over the Firestore
// gRPC API. Every other document is missing.
type fakeFirestore struct {
	firestorepb.UnimplementedFirestoreServer
}

func (fakeFirestore) BatchGetDocuments(req *firestorepb.BatchGetDocumentsRequest, stream firestorepb.Firestore_BatchGetDocumentsServer) error {
	for _, name := range req.GetDocuments() {
		resp := &firestorepb.BatchGetDocumentsResponse{ReadTime: timestamppb.Now()}
		if strings.HasSuffix(name, "/things/abc") {
			resp.Result = &firestorepb.BatchGetDocumentsResponse_Found{Found: &firestorepb.Document{
				Name: name,
				Fields: map[string]*firestorepb.Value{
					"Name": {ValueType: &firestorepb.Value_StringValue{StringValue: "first"}},
				},
				CreateTime: timestamppb.Now(),
				UpdateTime: timestamppb.Now(),
			}}
		} else {
			resp.Result = &firestorepb.BatchGetDocumentsResponse_Missing{Missing: name}
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
	return nil
}

func (fakeFirestore) Commit(_ context.Context, req *firestorepb.CommitRequest) (*firestorepb.CommitResponse, error) {
	results := make([]*firestorepb.WriteResult, 0, len(req.GetWrites()))
	for _, w := range req.GetWrites() {
		if !strings.HasSuffix(w.GetUpdate().GetName(), "/things/abc") && w.GetCurrentDocument().GetExists() {
			return nil, status.Error(codes.NotFound, "no entity to update")
		}
		results = append(results, &firestorepb.WriteResult{UpdateTime: timestamppb.Now()})
	}
	return &firestorepb.CommitResponse{WriteResults: results, CommitTime: timestamppb.Now()}, nil
}

func newFakeFirestoreStore(t *testing.T) *FirestoreStore {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	firestorepb.RegisterFirestoreServer(srv, &fakeFirestore{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	t.Setenv("FIRESTORE_EMULATOR_HOST", lis.Addr().String())
	client, err := firestore.NewClient(context.Background(), "test-project")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewFirestoreStore(client)
}

func TestFirestoreStore_Create(t *testing.T) {
	s := newFakeFirestoreStore(t)

	doc := &testDoc{Name: "first"}
	id, err := s.Create(context.Background(), "things", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, doc.ID)
}

func TestFirestoreStore_Get(t *testing.T) {
	s := newFakeFirestoreStore(t)
	ctx := context.Background()

	var got testDoc
	found, err := s.Get(ctx, "things", "abc", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "first", got.Name)

	found, err = s.Get(ctx, "things", "missing", &testDoc{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFirestoreStore_Update(t *testing.T) {
	s := newFakeFirestoreStore(t)
	ctx := context.Background()

	var got testDoc
	found, err := s.Update(ctx, "things", "abc", map[string]any{"Flags.A": true}, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc", got.ID)

	found, err = s.Update(ctx, "things", "missing", map[string]any{"Flags.A": true}, &testDoc{})
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.Update(ctx, "things", "abc", nil, &testDoc{})
	assert.Error(t, err)
}
