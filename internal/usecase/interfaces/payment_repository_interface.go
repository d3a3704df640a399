package interfaces

import (
	"context"

	"taller360/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// AppendToOrder persists the payment row and the recomputed order totals in a
// single TransactWriteItems call, conditioned on totals.ExpectedVersion. Either
// both writes commit or neither does; a version mismatch surfaces as
// ErrVersionConflict.

type IPaymentRepository interface {
	AppendToOrder(ctx context.Context, p entities.Payment, totals entities.OrderTotals) error
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}
