package interfaces

import (
	"context"

	"taller360/internal/domain/entities"
)

// IWhatsAppTemplateRepository abstracts DynamoDB persistence for WhatsAppTemplate.

type IWhatsAppTemplateRepository interface {
	Create(ctx context.Context, t entities.WhatsAppTemplate) (entities.WhatsAppTemplate, error)
	GetByID(ctx context.Context, id string) (entities.WhatsAppTemplate, error)
	List(ctx context.Context) ([]entities.WhatsAppTemplate, error)
}
