package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taller360/internal/domain/entities"
	"taller360/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMessagesTableName = "whatsapp_messages"
	messagesExternalIDIndex  = "external_id-index"
	messagesOwnerIDIndex     = "owner_id-index"
)

type whatsappMessageItem struct {
	ID           string `dynamodbav:"id"`
	OwnerID      string `dynamodbav:"owner_id"`
	OrderID      string `dynamodbav:"order_id,omitempty"`
	TemplateID   string `dynamodbav:"template_id"`
	Content      string `dynamodbav:"content"`
	PhoneNumber  string `dynamodbav:"phone_number"`
	Status       string `dynamodbav:"status"`
	ExternalID   string `dynamodbav:"external_id,omitempty"`
	SentAt       string `dynamodbav:"sent_at,omitempty"`
	DeliveredAt  string `dynamodbav:"delivered_at,omitempty"`
	ReadAt       string `dynamodbav:"read_at,omitempty"`
	ErrorMessage string `dynamodbav:"error_message,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// WhatsAppMessageDynamoRepository persists WhatsAppMessage entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_id-index (PK: external_id) for webhook lookups
//   - GSI: owner_id-index (PK: owner_id) for the per-owner message timeline
//
// Status writes carry a condition on the row's current status so that
// concurrent callbacks racing past the use case's snapshot can never move a
// row backwards; timestamps are stamped with if_not_exists so replayed
// callbacks leave them unchanged.

type WhatsAppMessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWhatsAppMessageRepository = (*WhatsAppMessageDynamoRepository)(nil)

func NewWhatsAppMessageDynamoRepository(ddb *dynamodb.Client) *WhatsAppMessageDynamoRepository {
	return &WhatsAppMessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WHATSAPP_MESSAGES_TABLE", defaultMessagesTableName),
	}
}

func (r *WhatsAppMessageDynamoRepository) Create(ctx context.Context, m entities.WhatsAppMessage) (entities.WhatsAppMessage, error) {
	it := toWhatsAppMessageItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WhatsAppMessage{}, err
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
		return entities.WhatsAppMessage{}, err
	}
	return m, nil
}

func (r *WhatsAppMessageDynamoRepository) GetByID(ctx context.Context, id string) (entities.WhatsAppMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WhatsAppMessage{}, err
	}
	if len(out.Item) == 0 {
		return entities.WhatsAppMessage{}, nil
	}

	var it whatsappMessageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WhatsAppMessage{}, err
	}
	return fromWhatsAppMessageItem(it), nil
}

func (r *WhatsAppMessageDynamoRepository) GetByExternalID(ctx context.Context, externalID string) (entities.WhatsAppMessage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(messagesExternalIDIndex),
		KeyConditionExpression: aws.String("external_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: externalID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.WhatsAppMessage{}, err
	}
	if len(out.Items) == 0 {
		return entities.WhatsAppMessage{}, nil
	}

	var it whatsappMessageItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.WhatsAppMessage{}, err
	}
	return fromWhatsAppMessageItem(it), nil
}

func (r *WhatsAppMessageDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.WhatsAppMessage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(messagesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WhatsAppMessage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it whatsappMessageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWhatsAppMessageItem(it))
	}
	return items, nil
}

func (r *WhatsAppMessageDynamoRepository) MarkSent(ctx context.Context, id, externalID string, sentAt time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #external_id = :external_id, #sent_at = if_not_exists(#sent_at, :sent_at), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#external_id": "external_id",
			"#sent_at":     "sent_at",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.MessageStatusPending)},
			":status":      &types.AttributeValueMemberS{Value: string(entities.MessageStatusSent)},
			":external_id": &types.AttributeValueMemberS{Value: externalID},
			":sent_at":     &types.AttributeValueMemberS{Value: timeToString(sentAt)},
			":updated_at":  &types.AttributeValueMemberS{Value: timeToString(time.Now().UTC())},
		},
	})
	if isConditionalCheckFailed(err) {
		// The row already moved past pending; leave it where it is.
		return nil
	}
	return err
}

func (r *WhatsAppMessageDynamoRepository) MarkFailed(ctx context.Context, id, errorMessage string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #error_message = :error_message, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#status":        "status",
			"#error_message": "error_message",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(entities.MessageStatusFailed)},
			":error_message": &types.AttributeValueMemberS{Value: errorMessage},
			":updated_at":    &types.AttributeValueMemberS{Value: timeToString(time.Now().UTC())},
		},
	})
	return err
}

func (r *WhatsAppMessageDynamoRepository) ApplyStatusUpdate(ctx context.Context, upd entities.MessageStatusUpdate) error {
	exprParts := []string{"#status = :status", "#updated_at = :updated_at"}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(upd.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now().UTC())},
	}

	if upd.SentAt != nil {
		exprParts = append(exprParts, "#sent_at = if_not_exists(#sent_at, :sent_at)")
		names["#sent_at"] = "sent_at"
		values[":sent_at"] = &types.AttributeValueMemberS{Value: timeToString(*upd.SentAt)}
	}
	if upd.DeliveredAt != nil {
		exprParts = append(exprParts, "#delivered_at = if_not_exists(#delivered_at, :delivered_at)")
		names["#delivered_at"] = "delivered_at"
		values[":delivered_at"] = &types.AttributeValueMemberS{Value: timeToString(*upd.DeliveredAt)}
	}
	if upd.ReadAt != nil {
		exprParts = append(exprParts, "#read_at = if_not_exists(#read_at, :read_at)")
		names["#read_at"] = "read_at"
		values[":read_at"] = &types.AttributeValueMemberS{Value: timeToString(*upd.ReadAt)}
	}
	if upd.ErrorMessage != "" {
		exprParts = append(exprParts, "#error_message = if_not_exists(#error_message, :error_message)")
		names["#error_message"] = "error_message"
		values[":error_message"] = &types.AttributeValueMemberS{Value: upd.ErrorMessage}
	}

	// The use case checked CanAdvanceTo against a snapshot; a concurrent
	// callback may have advanced the row since. Condition the write on the
	// statuses that may still precede the target so the losing callback of a
	// race cannot regress the row.
	guards := make([]string, 0, 4)
	for i, s := range statusWriteGuard(upd.Status) {
		ph := fmt.Sprintf(":prior%d", i)
		values[ph] = &types.AttributeValueMemberS{Value: string(s)}
		guards = append(guards, ph)
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: upd.MessageID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status IN (" + strings.Join(guards, ", ") + ")"),
		UpdateExpression:          aws.String("SET " + strings.Join(exprParts, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if isConditionalCheckFailed(err) {
		// A racing callback advanced the row past the target; dropping this
		// write keeps the lifecycle forward-only.
		return nil
	}
	return err
}

// statusWriteGuard returns the statuses a row may currently hold for a write
// targeting next: next itself (timestamp-only updates) plus every status that
// still advances to it.
func statusWriteGuard(next entities.MessageStatus) []entities.MessageStatus {
	all := []entities.MessageStatus{
		entities.MessageStatusPending,
		entities.MessageStatusSent,
		entities.MessageStatusDelivered,
		entities.MessageStatusRead,
		entities.MessageStatusFailed,
	}
	allowed := make([]entities.MessageStatus, 0, len(all))
	for _, s := range all {
		if s == next || s.CanAdvanceTo(next) {
			allowed = append(allowed, s)
		}
	}
	return allowed
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func toWhatsAppMessageItem(m entities.WhatsAppMessage) whatsappMessageItem {
	return whatsappMessageItem{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		OrderID:      m.OrderID,
		TemplateID:   m.TemplateID,
		Content:      m.Content,
		PhoneNumber:  m.PhoneNumber,
		Status:       string(m.Status),
		ExternalID:   m.ExternalID,
		SentAt:       timePtrToString(m.SentAt),
		DeliveredAt:  timePtrToString(m.DeliveredAt),
		ReadAt:       timePtrToString(m.ReadAt),
		ErrorMessage: m.ErrorMessage,
		CreatedAt:    timeToString(m.CreatedAt),
		UpdatedAt:    timeToString(m.UpdatedAt),
	}
}

func fromWhatsAppMessageItem(it whatsappMessageItem) entities.WhatsAppMessage {
	return entities.WhatsAppMessage{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		OrderID:      it.OrderID,
		TemplateID:   it.TemplateID,
		Content:      it.Content,
		PhoneNumber:  it.PhoneNumber,
		Status:       entities.MessageStatus(it.Status),
		ExternalID:   it.ExternalID,
		SentAt:       timePtrFromString(it.SentAt),
		DeliveredAt:  timePtrFromString(it.DeliveredAt),
		ReadAt:       timePtrFromString(it.ReadAt),
		ErrorMessage: it.ErrorMessage,
		CreatedAt:    timeFromString(it.CreatedAt),
		UpdatedAt:    timeFromString(it.UpdatedAt),
	}
}
