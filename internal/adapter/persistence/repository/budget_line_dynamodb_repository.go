package repository

import (
	"context"
	"errors"
	"time"

	"taller360/internal/domain/entities"
	"taller360/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetLinesTableName = "budget_lines"
	budgetLinesOrderIDIndex     = "order_id-index"
)

type budgetLineItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TaxRate     string `dynamodbav:"tax_rate"`
	DiscountPct string `dynamodbav:"discount_pct"`
	Total       string `dynamodbav:"total"`
	Approved    bool   `dynamodbav:"approved"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// BudgetLineDynamoRepository persists BudgetLine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type BudgetLineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetLineRepository = (*BudgetLineDynamoRepository)(nil)

func NewBudgetLineDynamoRepository(ddb *dynamodb.Client) *BudgetLineDynamoRepository {
	return &BudgetLineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGET_LINES_TABLE", defaultBudgetLinesTableName),
	}
}

func (r *BudgetLineDynamoRepository) Create(ctx context.Context, l entities.BudgetLine) (entities.BudgetLine, error) {
	it := toBudgetLineItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BudgetLine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BudgetLine{}, err
	}
	return l, nil
}

func (r *BudgetLineDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetLine{}, nil
	}

	var it budgetLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetLine{}, err
	}
	return fromBudgetLineItem(it), nil
}

func (r *BudgetLineDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.BudgetLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetLinesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BudgetLine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetLineItem(it))
	}
	return items, nil
}

func (r *BudgetLineDynamoRepository) SetApproved(ctx context.Context, id string) (entities.BudgetLine, error) {
	now := timeToString(time.Now().UTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #approved = :approved, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#approved":   "approved",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved":   &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BudgetLine{}, nil
		}
		return entities.BudgetLine{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BudgetLine{}, nil
	}
	var it budgetLineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BudgetLine{}, err
	}
	return fromBudgetLineItem(it), nil
}

func toBudgetLineItem(l entities.BudgetLine) budgetLineItem {
	return budgetLineItem{
		ID:          l.ID,
		OrderID:     l.OrderID,
		Kind:        string(l.Kind),
		Description: l.Description,
		Quantity:    decimalToString(l.Quantity),
		UnitPrice:   decimalToString(l.UnitPrice),
		TaxRate:     decimalToString(l.TaxRate),
		DiscountPct: decimalToString(l.DiscountPct),
		Total:       decimalToString(l.Total),
		Approved:    l.Approved,
		CreatedAt:   timeToString(l.CreatedAt),
		UpdatedAt:   timeToString(l.UpdatedAt),
	}
}

func fromBudgetLineItem(it budgetLineItem) entities.BudgetLine {
	return entities.BudgetLine{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Kind:        entities.BudgetLineKind(it.Kind),
		Description: it.Description,
		Quantity:    decimalFromString(it.Quantity),
		UnitPrice:   decimalFromString(it.UnitPrice),
		TaxRate:     decimalFromString(it.TaxRate),
		DiscountPct: decimalFromString(it.DiscountPct),
		Total:       decimalFromString(it.Total),
		Approved:    it.Approved,
		CreatedAt:   timeFromString(it.CreatedAt),
		UpdatedAt:   timeFromString(it.UpdatedAt),
	}
}
