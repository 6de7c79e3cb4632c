package repository

import (
	"context"
	"time"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"
)

const defaultBucketsKey = "hs_demo_buckets"

// BucketKVRepository persists every client's buckets as one JSON list.
type BucketKVRepository struct {
	doc *listDocument[entities.Bucket]
	now func() time.Time
}

var _ interfaces.IBucketRepository = (*BucketKVRepository)(nil)

func NewBucketKVRepository(kv interfaces.IKeyValueStore, key string) *BucketKVRepository {
	if key == "" {
		key = defaultBucketsKey
	}
	return &BucketKVRepository{
		doc: newListDocument(kv, key, func(b entities.Bucket) string { return b.ID }),
		now: nowUTC,
	}
}

func (r *BucketKVRepository) List(ctx context.Context) ([]entities.Bucket, error) {
	return r.doc.load(ctx)
}

func (r *BucketKVRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Bucket, error) {
	all, err := r.doc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Bucket, 0, len(all))
	for _, b := range all {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BucketKVRepository) GetByID(ctx context.Context, id string) (entities.Bucket, error) {
	return r.doc.find(ctx, id)
}

func (r *BucketKVRepository) Create(ctx context.Context, b entities.Bucket) (entities.Bucket, error) {
	now := r.now()
	if b.ID == "" {
		b.ID = newID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = b.CreatedAt
	if b.Items == nil {
		b.Items = []entities.LineItem{}
	}

	if err := r.doc.prepend(ctx, b); err != nil {
		return entities.Bucket{}, err
	}
	return b, nil
}

func (r *BucketKVRepository) Mutate(ctx context.Context, id string, fn func(b *entities.Bucket) error) (entities.Bucket, error) {
	return r.doc.mutate(ctx, id, func(b *entities.Bucket) error {
		if err := fn(b); err != nil {
			return err
		}
		b.UpdatedAt = r.now()
		return nil
	})
}

func (r *BucketKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.doc.remove(ctx, id)
}
