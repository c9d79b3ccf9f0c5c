package documentstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoStore maps each collection to a DynamoDB table named
// tablePrefix + collection.
//
// Table requirements:
//   - PK: id (string)
type DynamoStore struct {
	ddb         *dynamodb.Client
	tablePrefix string
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client, tablePrefix string) *DynamoStore {
	return &DynamoStore{ddb: ddb, tablePrefix: tablePrefix}
}

func (s *DynamoStore) table(collection string) string {
	return s.tablePrefix + collection
}

func (s *DynamoStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	doc.SetID(id)

	av, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return "", fmt.Errorf("dynamodb marshal %s: %w", collection, err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table(collection)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return "", fmt.Errorf("dynamodb put %s: %w", collection, err)
	}
	return id, nil
}

func (s *DynamoStore) Get(ctx context.Context, collection, id string, out Document) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table(collection)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("dynamodb get %s/%s: %w", collection, id, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, fmt.Errorf("dynamodb unmarshal %s/%s: %w", collection, id, err)
	}
	out.SetID(id)
	return true, nil
}

func (s *DynamoStore) Update(ctx context.Context, collection, id string, fields map[string]any, out Document) (bool, error) {
	expr, names, values, err := buildSetExpression(fields)
	if err != nil {
		return false, fmt.Errorf("dynamodb update %s/%s: %w", collection, id, err)
	}
	names["#id"] = "id"

	res, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table(collection)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, fmt.Errorf("dynamodb update %s/%s: %w", collection, id, err)
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
		return false, fmt.Errorf("dynamodb unmarshal %s/%s: %w", collection, id, err)
	}
	out.SetID(id)
	return true, nil
}

// buildSetExpression turns dotted field paths into a single SET clause with
// placeholder names, e.g. "SET #f0_0.#f0_1 = :v0, #f1_0 = :v1".
func buildSetExpression(fields map[string]any) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(fields) == 0 {
		return "", nil, nil, errors.New("no fields to update")
	}

	paths := make([]string, 0, len(fields))
	for p := range fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	names := make(map[string]string)
	values := make(map[string]types.AttributeValue, len(paths))
	clauses := make([]string, 0, len(paths))
	for i, p := range paths {
		segments := splitPath(p)
		placeholders := make([]string, len(segments))
		for j, seg := range segments {
			ph := "#f" + strconv.Itoa(i) + "_" + strconv.Itoa(j)
			names[ph] = seg
			placeholders[j] = ph
		}

		av, err := attributevalue.Marshal(fields[p])
		if err != nil {
			return "", nil, nil, err
		}
		vk := ":v" + strconv.Itoa(i)
		values[vk] = av
		clauses = append(clauses, strings.Join(placeholders, ".")+" = "+vk)
	}
	return "SET " + strings.Join(clauses, ", "), names, values, nil
}
