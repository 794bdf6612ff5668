package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContentVersionsTableName = "content_versions"

type contentVersionItem struct {
	OrderID      string `dynamodbav:"order_id"`
	Version      int    `dynamodbav:"version"`
	Content      string `dynamodbav:"content"`
	Author       string `dynamodbav:"author"`
	IsActive     bool   `dynamodbav:"is_active"`
	Notes        string `dynamodbav:"notes,omitempty"`
	QualityScore *int   `dynamodbav:"quality_score,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ContentVersionDynamoRepository persists ContentVersion entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: version (number)
//
// The item at version 0 is a counter row, not a version: its version_seq
// attribute holds the highest version number ever allocated for the order.
// Real versions start at 1, so reads always query version >= 1.
type ContentVersionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContentVersionRepository = (*ContentVersionDynamoRepository)(nil)

func NewContentVersionDynamoRepository(ddb *dynamodb.Client) *ContentVersionDynamoRepository {
	return &ContentVersionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTENT_VERSIONS_TABLE", defaultContentVersionsTableName),
	}
}

const versionAllocateAttempts = 5

// Create allocates the next version number and inserts the version in one
// transaction: the counter increment is conditioned on the sequence still
// holding the value just read, so a failed insert never burns a number and a
// concurrent creator cancels the transaction and retries with a fresh read.
func (r *ContentVersionDynamoRepository) Create(ctx context.Context, v entities.ContentVersion) (entities.ContentVersion, error) {
	for attempt := 0; attempt < versionAllocateAttempts; attempt++ {
		seq, err := r.counterValue(ctx, v.OrderID)
		if err != nil {
			return entities.ContentVersion{}, err
		}
		v.Version = seq + 1

		av, err := attributevalue.MarshalMap(toContentVersionItem(v))
		if err != nil {
			return entities.ContentVersion{}, err
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: r.allocateItems(v.OrderID, seq, av),
		})
		if err != nil {
			var canceled *types.TransactionCanceledException
			if errors.As(err, &canceled) {
				continue
			}
			return entities.ContentVersion{}, err
		}
		return v, nil
	}
	return entities.ContentVersion{}, fmt.Errorf("allocate version for order %s: gave up after %d attempts", v.OrderID, versionAllocateAttempts)
}

// allocateItems builds the two-item allocation transaction: the counter row
// moves from seq to seq+1 and the version item at seq+1 is inserted, both or
// neither.
func (r *ContentVersionDynamoRepository) allocateItems(orderID string, seq int, av map[string]types.AttributeValue) []types.TransactWriteItem {
	counterCondition := "#version_seq = :seq"
	counterValues := map[string]types.AttributeValue{
		":one": &types.AttributeValueMemberN{Value: "1"},
		":seq": &types.AttributeValueMemberN{Value: strconv.Itoa(seq)},
	}
	if seq == 0 {
		counterCondition = "attribute_not_exists(#version_seq)"
		delete(counterValues, ":seq")
	}

	return []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 contentVersionKey(orderID, 0),
				UpdateExpression:    aws.String("ADD #version_seq :one"),
				ConditionExpression: aws.String(counterCondition),
				ExpressionAttributeNames: map[string]string{
					"#version_seq": "version_seq",
				},
				ExpressionAttributeValues: counterValues,
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
				ExpressionAttributeNames: map[string]string{
					"#order_id": "order_id",
				},
			},
		},
	}
}

func (r *ContentVersionDynamoRepository) counterValue(ctx context.Context, orderID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            contentVersionKey(orderID, 0),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var counter struct {
		VersionSeq int `dynamodbav:"version_seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &counter); err != nil {
		return 0, err
	}
	return counter.VersionSeq, nil
}

func (r *ContentVersionDynamoRepository) Get(ctx context.Context, orderID string, version int) (entities.ContentVersion, error) {
	if version < 1 {
		return entities.ContentVersion{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            contentVersionKey(orderID, version),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContentVersion{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContentVersion{}, nil
	}

	var it contentVersionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContentVersion{}, err
	}
	return fromContentVersionItem(it), nil
}

func (r *ContentVersionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ContentVersion, error) {
	in := r.versionsQuery(orderID)

	versions := []entities.ContentVersion{}
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it contentVersionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			versions = append(versions, fromContentVersionItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return versions, nil
}

func (r *ContentVersionDynamoRepository) Activate(ctx context.Context, orderID string, version int) error {
	versions, err := r.ListByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: r.activateItems(orderID, version, versions),
	})
	return err
}

// activateItems builds the activation transaction: the target version is set
// active and EVERY sibling is set inactive, whether or not it was read as
// active. Racing activations then overlap on the same items, DynamoDB
// serializes the transactions, and the later commit leaves exactly one
// active version.
func (r *ContentVersionDynamoRepository) activateItems(orderID string, version int, versions []entities.ContentVersion) []types.TransactWriteItem {
	items := make([]types.TransactWriteItem, 0, len(versions))
	for _, v := range versions {
		items = append(items, r.setActiveItem(orderID, v.Version, v.Version == version))
	}
	return items
}

func (r *ContentVersionDynamoRepository) GetActive(ctx context.Context, orderID string) (entities.ContentVersion, error) {
	in := r.versionsQuery(orderID)
	in.FilterExpression = aws.String("#is_active = :true")
	in.ExpressionAttributeNames["#is_active"] = "is_active"
	in.ExpressionAttributeValues[":true"] = &types.AttributeValueMemberBOOL{Value: true}

	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return entities.ContentVersion{}, err
		}
		if len(out.Items) > 0 {
			var it contentVersionItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.ContentVersion{}, err
			}
			return fromContentVersionItem(it), nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.ContentVersion{}, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ContentVersionDynamoRepository) versionsQuery(orderID string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#order_id = :order_id AND #version >= :one"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
			"#version":  "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
			":one":      &types.AttributeValueMemberN{Value: "1"},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	}
}

func (r *ContentVersionDynamoRepository) setActiveItem(orderID string, version int, active bool) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 contentVersionKey(orderID, version),
			ConditionExpression: aws.String("attribute_exists(#order_id)"),
			UpdateExpression:    aws.String("SET #is_active = :active"),
			ExpressionAttributeNames: map[string]string{
				"#order_id":  "order_id",
				"#is_active": "is_active",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberBOOL{Value: active},
			},
		},
	}
}

func contentVersionKey(orderID string, version int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"order_id": &types.AttributeValueMemberS{Value: orderID},
		"version":  &types.AttributeValueMemberN{Value: strconv.Itoa(version)},
	}
}

func toContentVersionItem(v entities.ContentVersion) contentVersionItem {
	return contentVersionItem{
		OrderID:      v.OrderID,
		Version:      v.Version,
		Content:      v.Content,
		Author:       v.Author,
		IsActive:     v.IsActive,
		Notes:        v.Notes,
		QualityScore: v.QualityScore,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContentVersionItem(it contentVersionItem) entities.ContentVersion {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ContentVersion{
		OrderID:      it.OrderID,
		Version:      it.Version,
		Content:      it.Content,
		Author:       it.Author,
		IsActive:     it.IsActive,
		Notes:        it.Notes,
		QualityScore: it.QualityScore,
		CreatedAt:    createdAt,
	}
}
