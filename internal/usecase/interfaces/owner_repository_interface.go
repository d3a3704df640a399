package interfaces

import (
	"context"

	"taller360/internal/domain/entities"
)

// IOwnerRepository abstracts DynamoDB persistence for Owner.

type IOwnerRepository interface {
	Create(ctx context.Context, o entities.Owner) (entities.Owner, error)
	GetByID(ctx context.Context, id string) (entities.Owner, error)
}
