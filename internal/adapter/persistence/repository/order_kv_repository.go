package repository

import (
	"context"
	"time"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"
)

const defaultOrdersKey = "hs_demo_orders"

// OrderKVRepository is the Order Store: all orders as one JSON list under a
// single key, most recently added first. Lookups are linear scans.
type OrderKVRepository struct {
	doc *listDocument[entities.Order]
	now func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderKVRepository)(nil)

func NewOrderKVRepository(kv interfaces.IKeyValueStore, key string) *OrderKVRepository {
	if key == "" {
		key = defaultOrdersKey
	}
	return &OrderKVRepository{
		doc: newListDocument(kv, key, func(o entities.Order) string { return o.ID }),
		now: nowUTC,
	}
}

func (r *OrderKVRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.doc.load(ctx)
}

func (r *OrderKVRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return r.doc.find(ctx, id)
}

// Create assigns ID and CreatedAt when the caller left them empty. It does not
// validate anything else: a record without a client is stored as is.
func (r *OrderKVRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	now := r.now()
	if o.ID == "" {
		o.ID = newID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	if o.Items == nil {
		o.Items = []entities.LineItem{}
	}

	if err := r.doc.prepend(ctx, o); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderKVRepository) Update(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	return r.Mutate(ctx, id, func(o *entities.Order) error {
		patch.Apply(o)
		return nil
	})
}

func (r *OrderKVRepository) Mutate(ctx context.Context, id string, fn func(o *entities.Order) error) (entities.Order, error) {
	return r.doc.mutate(ctx, id, func(o *entities.Order) error {
		if err := fn(o); err != nil {
			return err
		}
		o.UpdatedAt = r.now()
		return nil
	})
}

func (r *OrderKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.doc.remove(ctx, id)
}
