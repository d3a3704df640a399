package interfaces

import (
	"context"
	"errors"

	"taller360/internal/domain/entities"
)

//go:generate mockgen -destination mocks/mock_interfaces.go -package mock_interfaces taller360/internal/usecase/interfaces IOrderRepository,IBudgetLineRepository,IPaymentRepository,IOwnerRepository,IWhatsAppTemplateRepository,IWhatsAppMessageRepository,IMessageGateway

// ErrVersionConflict is returned by version-conditioned writes when the stored
// order no longer matches the snapshot the caller read. Callers re-read and
// retry.
var ErrVersionConflict = errors.New("order version conflict")

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// UpdateTotals is a version-conditioned write: it only commits when the stored
// version equals totals.ExpectedVersion, and bumps the version on success.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateTotals(ctx context.Context, totals entities.OrderTotals) (entities.Order, error)
}
