package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkflowStepsTableName = "workflow_steps"

type workflowStepItem struct {
	OrderID          string `dynamodbav:"order_id"`
	Ordinal          int    `dynamodbav:"ordinal"`
	Name             string `dynamodbav:"name"`
	Status           string `dynamodbav:"status"`
	EstimatedMinutes int    `dynamodbav:"estimated_minutes"`
	StartedAt        string `dynamodbav:"started_at,omitempty"`
	CompletedAt      string `dynamodbav:"completed_at,omitempty"`
}

// WorkflowStepDynamoRepository persists WorkflowStep entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: ordinal (number)
//
// Step rows are inserted by OrderDynamoRepository.Create in the same
// transaction as the order row; this repository reads and mutates them.
type WorkflowStepDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkflowStepRepository = (*WorkflowStepDynamoRepository)(nil)

func NewWorkflowStepDynamoRepository(ddb *dynamodb.Client) *WorkflowStepDynamoRepository {
	return &WorkflowStepDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKFLOW_STEPS_TABLE", defaultWorkflowStepsTableName),
	}
}

func (r *WorkflowStepDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.WorkflowStep, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	}

	steps := []entities.WorkflowStep{}
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it workflowStepItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			steps = append(steps, fromWorkflowStepItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return steps, nil
}

func (r *WorkflowStepDynamoRepository) Get(ctx context.Context, orderID string, ordinal int) (entities.WorkflowStep, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            workflowStepKey(orderID, ordinal),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkflowStep{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkflowStep{}, nil
	}

	var it workflowStepItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkflowStep{}, err
	}
	return fromWorkflowStepItem(it), nil
}

func (r *WorkflowStepDynamoRepository) UpdateStatus(ctx context.Context, orderID string, ordinal int, from, to entities.StepStatus, startedAt, completedAt *time.Time) (entities.WorkflowStep, error) {
	updateExpr := "SET #status = :to"
	names := map[string]string{
		"#order_id": "order_id",
		"#status":   "status",
	}
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}
	if startedAt != nil {
		updateExpr += ", #started_at = :started_at"
		names["#started_at"] = "started_at"
		values[":started_at"] = &types.AttributeValueMemberS{Value: startedAt.UTC().Format(time.RFC3339Nano)}
	}
	if completedAt != nil {
		updateExpr += ", #completed_at = :completed_at"
		names["#completed_at"] = "completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: completedAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       workflowStepKey(orderID, ordinal),
		ConditionExpression:       aws.String("attribute_exists(#order_id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkflowStep{}, nil
		}
		return entities.WorkflowStep{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkflowStep{}, nil
	}
	var it workflowStepItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkflowStep{}, err
	}
	return fromWorkflowStepItem(it), nil
}

func workflowStepKey(orderID string, ordinal int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"order_id": &types.AttributeValueMemberS{Value: orderID},
		"ordinal":  &types.AttributeValueMemberN{Value: strconv.Itoa(ordinal)},
	}
}

func toWorkflowStepItem(s entities.WorkflowStep) workflowStepItem {
	it := workflowStepItem{
		OrderID:          s.OrderID,
		Ordinal:          s.Ordinal,
		Name:             s.Name,
		Status:           string(s.Status),
		EstimatedMinutes: s.EstimatedMinutes,
	}
	if s.StartedAt != nil {
		it.StartedAt = s.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	if s.CompletedAt != nil {
		it.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromWorkflowStepItem(it workflowStepItem) entities.WorkflowStep {
	s := entities.WorkflowStep{
		OrderID:          it.OrderID,
		Ordinal:          it.Ordinal,
		Name:             it.Name,
		Status:           entities.StepStatus(it.Status),
		EstimatedMinutes: it.EstimatedMinutes,
	}
	if it.StartedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.StartedAt); err == nil {
			s.StartedAt = &t
		}
	}
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			s.CompletedAt = &t
		}
	}
	return s
}
