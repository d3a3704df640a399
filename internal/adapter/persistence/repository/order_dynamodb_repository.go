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

const defaultOrdersTableName = "orders"

// orderTotalsUpdateExpr and orderTotalsCondition implement the version-checked
// totals write. They are shared with the payment repository, which runs the
// same update inside a TransactWriteItems call.
const (
	orderTotalsUpdateExpr = "SET #total = :total, #amount_paid = :amount_paid, #payment_status = :payment_status, #version = :new_version, #updated_at = :updated_at"
	orderTotalsCondition  = "attribute_exists(#id) AND #version = :expected_version"
)

func orderTotalsExprNames() map[string]string {
	return map[string]string{
		"#id":             "id",
		"#total":          "total",
		"#amount_paid":    "amount_paid",
		"#payment_status": "payment_status",
		"#version":        "version",
		"#updated_at":     "updated_at",
	}
}

func orderTotalsExprValues(t entities.OrderTotals, now string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":total":            &types.AttributeValueMemberS{Value: decimalToString(t.Total)},
		":amount_paid":      &types.AttributeValueMemberS{Value: decimalToString(t.AmountPaid)},
		":payment_status":   &types.AttributeValueMemberS{Value: string(t.PaymentStatus)},
		":new_version":      &types.AttributeValueMemberN{Value: int64ToString(t.ExpectedVersion + 1)},
		":expected_version": &types.AttributeValueMemberN{Value: int64ToString(t.ExpectedVersion)},
		":updated_at":       &types.AttributeValueMemberS{Value: now},
	}
}

type orderItem struct {
	ID             string `dynamodbav:"id"`
	Folio          string `dynamodbav:"folio"`
	OwnerID        string `dynamodbav:"owner_id"`
	VehicleID      string `dynamodbav:"vehicle_id"`
	Status         string `dynamodbav:"status"`
	Total          string `dynamodbav:"total"`
	AmountPaid     string `dynamodbav:"amount_paid"`
	PaymentStatus  string `dynamodbav:"payment_status"`
	CommitmentDate string `dynamodbav:"commitment_date,omitempty"`
	Version        int64  `dynamodbav:"version"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The version attribute is the optimistic lock for totals writes.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
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

func (r *OrderDynamoRepository) UpdateTotals(ctx context.Context, totals entities.OrderTotals) (entities.Order, error) {
	now := timeToString(time.Now().UTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: totals.OrderID},
		},
		ConditionExpression:       aws.String(orderTotalsCondition),
		UpdateExpression:          aws.String(orderTotalsUpdateExpr),
		ExpressionAttributeNames:  orderTotalsExprNames(),
		ExpressionAttributeValues: orderTotalsExprValues(totals, now),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrVersionConflict
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
	return orderItem{
		ID:             o.ID,
		Folio:          o.Folio,
		OwnerID:        o.OwnerID,
		VehicleID:      o.VehicleID,
		Status:         string(o.Status),
		Total:          decimalToString(o.Total),
		AmountPaid:     decimalToString(o.AmountPaid),
		PaymentStatus:  string(o.PaymentStatus),
		CommitmentDate: timePtrToString(o.CommitmentDate),
		Version:        o.Version,
		CreatedAt:      timeToString(o.CreatedAt),
		UpdatedAt:      timeToString(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:             it.ID,
		Folio:          it.Folio,
		OwnerID:        it.OwnerID,
		VehicleID:      it.VehicleID,
		Status:         entities.OrderStatus(it.Status),
		Total:          decimalFromString(it.Total),
		AmountPaid:     decimalFromString(it.AmountPaid),
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		CommitmentDate: timePtrFromString(it.CommitmentDate),
		Version:        it.Version,
		CreatedAt:      timeFromString(it.CreatedAt),
		UpdatedAt:      timeFromString(it.UpdatedAt),
	}
}
