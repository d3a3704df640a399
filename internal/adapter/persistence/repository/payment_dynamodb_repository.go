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
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type paymentItem struct {
	ID              string `dynamodbav:"id"`
	OrderID         string `dynamodbav:"order_id"`
	Amount          string `dynamodbav:"amount"`
	Method          string `dynamodbav:"method"`
	ReferenceNumber string `dynamodbav:"reference_number,omitempty"`
	Notes           string `dynamodbav:"notes,omitempty"`
	PaymentDate     string `dynamodbav:"payment_date"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// AppendToOrder writes the payment row and the recomputed order totals in one
// TransactWriteItems call: either both commit or neither does, so a payment can
// never exist without its matching order update.

type PaymentDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	ordersTableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		ordersTableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *PaymentDynamoRepository) AppendToOrder(ctx context.Context, p entities.Payment, totals entities.OrderTotals) error {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	now := timeToString(time.Now().UTC())

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.ordersTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: totals.OrderID},
					},
					ConditionExpression:       aws.String(orderTotalsCondition),
					UpdateExpression:          aws.String(orderTotalsUpdateExpr),
					ExpressionAttributeNames:  orderTotalsExprNames(),
					ExpressionAttributeValues: orderTotalsExprValues(totals, now),
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && transactionHitConditionCheck(tce) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

// transactionHitConditionCheck reports whether any item in the cancelled
// transaction failed its condition (stale order version or duplicate payment
// id). Other cancellation codes (throttling, conflicts with other
// transactions) surface as plain errors.
func transactionHitConditionCheck(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:              p.ID,
		OrderID:         p.OrderID,
		Amount:          decimalToString(p.Amount),
		Method:          string(p.Method),
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		PaymentDate:     timeToString(p.PaymentDate),
		CreatedAt:       timeToString(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:              it.ID,
		OrderID:         it.OrderID,
		Amount:          decimalFromString(it.Amount),
		Method:          entities.PaymentMethod(it.Method),
		ReferenceNumber: it.ReferenceNumber,
		Notes:           it.Notes,
		PaymentDate:     timeFromString(it.PaymentDate),
		CreatedAt:       timeFromString(it.CreatedAt),
	}
}
