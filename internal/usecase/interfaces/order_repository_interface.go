package interfaces

import (
	"context"
	"ndaje_storefront/internal/domain/entities"
)

// IOrderRepository is the Order Store: a single list of orders persisted under
// one key, most recent first.
//
// Not-found follows the zero-value convention: lookups and updates on an
// unknown id return an Order with an empty ID and a nil error.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)
	Mutate(ctx context.Context, id string, fn func(o *entities.Order) error) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
