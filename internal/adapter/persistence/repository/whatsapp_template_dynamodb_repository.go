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

const defaultTemplatesTableName = "whatsapp_templates"

type whatsappTemplateItem struct {
	ID        string   `dynamodbav:"id"`
	Name      string   `dynamodbav:"name"`
	Content   string   `dynamodbav:"content"`
	Variables []string `dynamodbav:"variables,omitempty"`
	Active    bool     `dynamodbav:"active"`
	Category  string   `dynamodbav:"category,omitempty"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// WhatsAppTemplateDynamoRepository persists WhatsAppTemplate entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the whole table; the template catalog is small by nature.

type WhatsAppTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWhatsAppTemplateRepository = (*WhatsAppTemplateDynamoRepository)(nil)

func NewWhatsAppTemplateDynamoRepository(ddb *dynamodb.Client) *WhatsAppTemplateDynamoRepository {
	return &WhatsAppTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WHATSAPP_TEMPLATES_TABLE", defaultTemplatesTableName),
	}
}

func (r *WhatsAppTemplateDynamoRepository) Create(ctx context.Context, t entities.WhatsAppTemplate) (entities.WhatsAppTemplate, error) {
	it := toWhatsAppTemplateItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WhatsAppTemplate{}, err
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
		return entities.WhatsAppTemplate{}, err
	}
	return t, nil
}

func (r *WhatsAppTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.WhatsAppTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WhatsAppTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.WhatsAppTemplate{}, nil
	}

	var it whatsappTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WhatsAppTemplate{}, err
	}
	return fromWhatsAppTemplateItem(it), nil
}

func (r *WhatsAppTemplateDynamoRepository) List(ctx context.Context) ([]entities.WhatsAppTemplate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WhatsAppTemplate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it whatsappTemplateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWhatsAppTemplateItem(it))
	}
	return items, nil
}

func toWhatsAppTemplateItem(t entities.WhatsAppTemplate) whatsappTemplateItem {
	return whatsappTemplateItem{
		ID:        t.ID,
		Name:      t.Name,
		Content:   t.Content,
		Variables: t.Variables,
		Active:    t.Active,
		Category:  t.Category,
		CreatedAt: timeToString(t.CreatedAt),
		UpdatedAt: timeToString(t.UpdatedAt),
	}
}

func fromWhatsAppTemplateItem(it whatsappTemplateItem) entities.WhatsAppTemplate {
	return entities.WhatsAppTemplate{
		ID:        it.ID,
		Name:      it.Name,
		Content:   it.Content,
		Variables: it.Variables,
		Active:    it.Active,
		Category:  it.Category,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
