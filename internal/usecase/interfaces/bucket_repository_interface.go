package interfaces

import (
	"context"
	"ndaje_storefront/internal/domain/entities"
)

// IBucketRepository persists client buckets. Same zero-value not-found
// convention as IOrderRepository.

type IBucketRepository interface {
	List(ctx context.Context) ([]entities.Bucket, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Bucket, error)
	GetByID(ctx context.Context, id string) (entities.Bucket, error)
	Create(ctx context.Context, b entities.Bucket) (entities.Bucket, error)
	Mutate(ctx context.Context, id string, fn func(b *entities.Bucket) error) (entities.Bucket, error)
	Delete(ctx context.Context, id string) (bool, error)
}
