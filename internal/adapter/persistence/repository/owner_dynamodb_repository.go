package repository

import (
	"context"

	"taller360/internal/domain/entities"
	"taller360/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOwnersTableName = "owners"

type ownerItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Phone           string `dynamodbav:"phone"`
	Email           string `dynamodbav:"email,omitempty"`
	WhatsAppConsent bool   `dynamodbav:"whatsapp_consent"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// OwnerDynamoRepository persists Owner entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OwnerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOwnerRepository = (*OwnerDynamoRepository)(nil)

func NewOwnerDynamoRepository(ddb *dynamodb.Client) *OwnerDynamoRepository {
	return &OwnerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OWNERS_TABLE", defaultOwnersTableName),
	}
}

func (r *OwnerDynamoRepository) Create(ctx context.Context, o entities.Owner) (entities.Owner, error) {
	it := toOwnerItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Owner{}, err
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
		return entities.Owner{}, err
	}
	return o, nil
}

func (r *OwnerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Owner, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Owner{}, err
	}
	if len(out.Item) == 0 {
		return entities.Owner{}, nil
	}

	var it ownerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Owner{}, err
	}
	return fromOwnerItem(it), nil
}

func toOwnerItem(o entities.Owner) ownerItem {
	return ownerItem{
		ID:              o.ID,
		Name:            o.Name,
		Phone:           o.Phone,
		Email:           o.Email,
		WhatsAppConsent: o.WhatsAppConsent,
		CreatedAt:       timeToString(o.CreatedAt),
		UpdatedAt:       timeToString(o.UpdatedAt),
	}
}

func fromOwnerItem(it ownerItem) entities.Owner {
	return entities.Owner{
		ID:              it.ID,
		Name:            it.Name,
		Phone:           it.Phone,
		Email:           it.Email,
		WhatsAppConsent: it.WhatsAppConsent,
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}
