package documentstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSetExpression(t *testing.T) {
	expr, names, values, err := buildSetExpression(map[string]any{
		"updatedAt":          "2026-01-01T00:00:00Z",
		"checklist.trashOut": true,
	})
	require.NoError(t, err)

	assert.Equal(t, "SET #f0_0.#f0_1 = :v0, #f1_0 = :v1", expr)
	assert.Equal(t, map[string]string{
		"#f0_0": "checklist",
		"#f0_1": "trashOut",
		"#f1_0": "updatedAt",
	}, names)
	assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, values[":v0"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "2026-01-01T00:00:00Z"}, values[":v1"])
}

func TestBuildSetExpression_Empty(t *testing.T) {
	_, _, _, err := buildSetExpression(nil)
	assert.Error(t, err)
}

// fakeDynamo answers DynamoDB JSON protocol calls by operation name.
func fakeDynamo(t *testing.T, respond func(op string, body map[string]any) (int, string)) *DynamoStore {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		op := strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")

		status, payload := respond(op, body)
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("test", "test", ""),
		RetryMaxAttempts: 1,
	})
	return NewDynamoStore(client, "turnover-")
}

func TestDynamoStore_Create(t *testing.T) {
	var table, condition string
	s := fakeDynamo(t, func(op string, body map[string]any) (int, string) {
		assert.Equal(t, "PutItem", op)
		table, _ = body["TableName"].(string)
		condition, _ = body["ConditionExpression"].(string)
		return http.StatusOK, `{}`
	})

	doc := &testDoc{Name: "first"}
	id, err := s.Create(context.Background(), "quotes", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "turnover-quotes", table)
	assert.Equal(t, "attribute_not_exists(#id)", condition)
}

func TestDynamoStore_Get(t *testing.T) {
	s := fakeDynamo(t, func(op string, body map[string]any) (int, string) {
		assert.Equal(t, "GetItem", op)
		assert.Equal(t, true, body["ConsistentRead"])
		key := body["Key"].(map[string]any)["id"].(map[string]any)["S"]
		if key == "missing" {
			return http.StatusOK, `{}`
		}
		return http.StatusOK, `{"Item":{"ID":{"S":"abc"},"Name":{"S":"first"}}}`
	})
	ctx := context.Background()

	var got testDoc
	found, err := s.Get(ctx, "quotes", "abc", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "first", got.Name)

	found, err = s.Get(ctx, "quotes", "missing", &testDoc{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDynamoStore_UpdateMissingItem(t *testing.T) {
	s := fakeDynamo(t, func(op string, body map[string]any) (int, string) {
		assert.Equal(t, "UpdateItem", op)
		assert.Equal(t, "attribute_exists(#id)", body["ConditionExpression"])
		return http.StatusBadRequest,
			`{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`
	})

	found, err := s.Update(context.Background(), "jobs", "nope", map[string]any{"flags.a": true}, &testDoc{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDynamoStore_UpdateReturnsNewItem(t *testing.T) {
	s := fakeDynamo(t, func(op string, body map[string]any) (int, string) {
		assert.Equal(t, "UpdateItem", op)
		assert.Equal(t, "ALL_NEW", body["ReturnValues"])
		return http.StatusOK, `{"Attributes":{"ID":{"S":"abc"},"Name":{"S":"first"},"Flags":{"M":{"A":{"BOOL":true}}}}}`
	})

	var got testDoc
	found, err := s.Update(context.Background(), "jobs", "abc", map[string]any{"Flags.A": true}, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Flags.A)
	assert.Equal(t, "abc", got.ID)
}

func TestDynamoStore_ServerError(t *testing.T) {
	s := fakeDynamo(t, func(op string, body map[string]any) (int, string) {
		return http.StatusBadRequest,
			`{"__type":"com.amazonaws.dynamodb.v20120810#ResourceNotFoundException","message":"table missing"}`
	})

	_, err := s.Get(context.Background(), "quotes", "abc", &testDoc{})
	var rnf *types.ResourceNotFoundException
	assert.ErrorAs(t, err, &rnf)
}
