package interfaces

import (
	"context"
	"ndaje_storefront/internal/domain/entities"
)

// IProductCatalog resolves products for price snapshots. GetByID returns a
// zero Product when the id is unknown.
type IProductCatalog interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
