package interfaces

import (
	"context"
	"time"

	"taller360/internal/domain/entities"
)

// IWhatsAppMessageRepository abstracts DynamoDB persistence for WhatsAppMessage.
//
// ApplyStatusUpdate must be idempotent: timestamp attributes are written with
// if-not-exists semantics so a replayed webhook leaves the row unchanged.

type IWhatsAppMessageRepository interface {
	Create(ctx context.Context, m entities.WhatsAppMessage) (entities.WhatsAppMessage, error)
	GetByID(ctx context.Context, id string) (entities.WhatsAppMessage, error)
	GetByExternalID(ctx context.Context, externalID string) (entities.WhatsAppMessage, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.WhatsAppMessage, error)
	MarkSent(ctx context.Context, id, externalID string, sentAt time.Time) error
	MarkFailed(ctx context.Context, id, errorMessage string) error
	ApplyStatusUpdate(ctx context.Context, upd entities.MessageStatusUpdate) error
}
