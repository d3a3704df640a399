package interfaces

import (
	"context"

	"taller360/internal/domain/entities"
)

// IBudgetLineRepository abstracts DynamoDB persistence for BudgetLine.
//
// SetApproved and the order-total recompute are two separate writes: if the
// recompute exhausts its retries the line stays approved and the order totals
// are stale until the next recompute (any later approval or payment rederives
// the total from all approved lines).

type IBudgetLineRepository interface {
	Create(ctx context.Context, l entities.BudgetLine) (entities.BudgetLine, error)
	GetByID(ctx context.Context, id string) (entities.BudgetLine, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.BudgetLine, error)
	SetApproved(ctx context.Context, id string) (entities.BudgetLine, error)
}
