package repository

import (
	"context"
	"errors"
	"time"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID          string `dynamodbav:"id"`
	ServiceType string `dynamodbav:"service_type"`
	Status      string `dynamodbav:"status"`
	Priority    string `dynamodbav:"priority"`
	AmountCents int64  `dynamodbav:"amount_cents"`

	Quantity     int      `dynamodbav:"quantity"`
	Modifiers    []string `dynamodbav:"modifiers,omitempty"`
	AddOns       []string `dynamodbav:"add_ons,omitempty"`
	DiscountCode string   `dynamodbav:"discount_code,omitempty"`

	CurrentRevisions int `dynamodbav:"current_revisions"`
	RevisionLimit    int `dynamodbav:"revision_limit"`

	DueDate        string `dynamodbav:"due_date,omitempty"`
	AssignedWriter string `dynamodbav:"assigned_writer,omitempty"`
	AssignedEditor string `dynamodbav:"assigned_editor,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status writes are compare-and-swap: the UpdateItem is conditioned on the
// stored status still being the one the caller read, so two concurrent
// transitions can never both succeed against a stale state. A failed
// condition is reported as the zero value, never as a partial write.

type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	stepsTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		stepsTableName: getenvDefault("WORKFLOW_STEPS_TABLE", defaultWorkflowStepsTableName),
	}
}

// Create writes the order row and its step rows as one transaction across the
// orders and workflow_steps tables. Either every row exists afterwards or
// none does.
func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order, steps []entities.WorkflowStep) (entities.Order, error) {
	items, err := r.createItems(o, steps)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) createItems(o entities.Order, steps []entities.WorkflowStep) ([]types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return nil, err
	}

	items := make([]types.TransactWriteItem, 0, len(steps)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, s := range steps {
		sav, err := attributevalue.MarshalMap(toWorkflowStepItem(s))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.stepsTableName),
				Item:                sav,
				ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
				ExpressionAttributeNames: map[string]string{
					"#order_id": "order_id",
				},
			},
		})
	}
	return items, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	filterExpr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		filterExpr = "#status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.ServiceType != "" {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		filterExpr += "#service_type = :service_type"
		names["#service_type"] = "service_type"
		values[":service_type"] = &types.AttributeValueMemberS{Value: filter.ServiceType}
	}
	if filterExpr != "" {
		in.FilterExpression = aws.String(filterExpr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	orders := []entities.Order{}
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string, string) {
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names, "attribute_exists(#id) AND #status = :from"
	})
}

func (r *OrderDynamoRepository) RequestRevision(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string, string) {
		expr := "SET #status = :to, #current_revisions = #current_revisions + :one, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":            "status",
			"#current_revisions": "current_revisions",
			"#revision_limit":    "revision_limit",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names, "attribute_exists(#id) AND #status = :from AND #current_revisions < #revision_limit"
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string, condition string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names, condition := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:               o.ID,
		ServiceType:      o.ServiceType,
		Status:           string(o.Status),
		Priority:         string(o.Priority),
		AmountCents:      o.AmountCents,
		Quantity:         o.Quantity,
		Modifiers:        o.Modifiers,
		AddOns:           o.AddOns,
		DiscountCode:     o.DiscountCode,
		CurrentRevisions: o.CurrentRevisions,
		RevisionLimit:    o.RevisionLimit,
		AssignedWriter:   o.AssignedWriter,
		AssignedEditor:   o.AssignedEditor,
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.DueDate != nil {
		it.DueDate = o.DueDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.Order{
		ID:               it.ID,
		ServiceType:      it.ServiceType,
		Status:           entities.OrderStatus(it.Status),
		Priority:         entities.OrderPriority(it.Priority),
		AmountCents:      it.AmountCents,
		Quantity:         it.Quantity,
		Modifiers:        it.Modifiers,
		AddOns:           it.AddOns,
		DiscountCode:     it.DiscountCode,
		CurrentRevisions: it.CurrentRevisions,
		RevisionLimit:    it.RevisionLimit,
		AssignedWriter:   it.AssignedWriter,
		AssignedEditor:   it.AssignedEditor,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.DueDate != "" {
		if due, err := time.Parse(time.RFC3339Nano, it.DueDate); err == nil {
			o.DueDate = &due
		}
	}
	return o
}
