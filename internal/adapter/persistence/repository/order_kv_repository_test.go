package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/infrastructure/database"

	"github.com/shopspring/decimal"
)

func sampleOrder(clientID string) entities.Order {
	return entities.Order{
		ClientID:      clientID,
		ClientName:    "Grand Hotel",
		Status:        entities.OrderStatusQuoteRequested,
		PaymentStatus: entities.PaymentStatusPendingQuote,
		Items: []entities.LineItem{
			{ProductRef: "p-1", Name: "Premium Bath Towels", UnitPrice: decimal.NewFromInt(45000), Quantity: 2},
		},
	}
}

func TestOrderKVRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryStore()
	repo := NewOrderKVRepository(kv, "")

	t.Run("empty store lists nothing", func(t *testing.T) {
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty list, got %d", len(got))
		}
	})

	t.Run("create assigns id and timestamps and prepends", func(t *testing.T) {
		first, err := repo.Create(ctx, sampleOrder("c-1"))
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if first.ID == "" || first.CreatedAt.IsZero() {
			t.Fatalf("expected id and created_at, got %+v", first)
		}
		second, err := repo.Create(ctx, sampleOrder("c-2"))
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}

		list, _ := repo.List(ctx)
		if len(list) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(list))
		}
		if list[0].ID != second.ID || list[1].ID != first.ID {
			t.Fatalf("expected newest first, got %s,%s", list[0].ID, list[1].ID)
		}
		if !list[1].Subtotal().Equal(decimal.NewFromInt(90000)) {
			t.Fatalf("expected decimal subtotal to survive round trip, got %s", list[1].Subtotal())
		}
	})

	t.Run("create keeps caller id and created_at", func(t *testing.T) {
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		o := sampleOrder("c-3")
		o.ID = "fixed-id"
		o.CreatedAt = at
		got, err := repo.Create(ctx, o)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got.ID != "fixed-id" || !got.CreatedAt.Equal(at) {
			t.Fatalf("expected caller values preserved, got %+v", got)
		}
	})

	t.Run("create does not require a client", func(t *testing.T) {
		got, err := repo.Create(ctx, entities.Order{})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestOrderKVRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderKVRepository(database.NewMemoryStore(), "")
	created, _ := repo.Create(ctx, sampleOrder("c-1"))

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, got.ID)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero order, got %+v", missing)
	}
}

func TestOrderKVRepository_Update(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryStore()
	repo := NewOrderKVRepository(kv, "")
	created, _ := repo.Create(ctx, sampleOrder("c-1"))

	t.Run("merges fields", func(t *testing.T) {
		status := entities.OrderStatusBilled
		code := "HS-ABC123"
		got, err := repo.Update(ctx, created.ID, entities.OrderPatch{Status: &status, OrderCode: &code})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got.Status != entities.OrderStatusBilled || got.OrderCode != code {
			t.Fatalf("unexpected update result %+v", got)
		}
		if got.ClientName != "Grand Hotel" {
			t.Fatalf("expected untouched fields preserved, got %q", got.ClientName)
		}

		stored, _ := repo.GetByID(ctx, created.ID)
		if stored.Status != entities.OrderStatusBilled {
			t.Fatalf("expected persisted status billed, got %s", stored.Status)
		}
	})

	t.Run("unknown id leaves storage unchanged", func(t *testing.T) {
		before, _, _ := kv.Get(ctx, defaultOrdersKey)
		status := entities.OrderStatusFulfilled
		got, err := repo.Update(ctx, "nope", entities.OrderPatch{Status: &status})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero order, got %+v", got)
		}
		after, _, _ := kv.Get(ctx, defaultOrdersKey)
		if before != after {
			t.Fatalf("expected storage untouched")
		}
	})
}

func TestOrderKVRepository_Mutate(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderKVRepository(database.NewMemoryStore(), "")
	created, _ := repo.Create(ctx, sampleOrder("c-1"))

	boom := errors.New("boom")
	_, err := repo.Mutate(ctx, created.ID, func(o *entities.Order) error {
		o.Status = entities.OrderStatusFulfilled
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.Status != entities.OrderStatusQuoteRequested {
		t.Fatalf("expected aborted mutation not persisted, got %s", stored.Status)
	}

	got, err := repo.Mutate(ctx, created.ID, func(o *entities.Order) error {
		return o.ApplyBill(decimal.NewFromInt(100000), "HS-XYZ789", "admin", time.Now())
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.Status != entities.OrderStatusBilled || got.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("unexpected mutate result %+v", got)
	}
}

func TestOrderKVRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderKVRepository(database.NewMemoryStore(), "")
	created, _ := repo.Create(ctx, sampleOrder("c-1"))

	ok, err := repo.Delete(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("expected delete ok, got ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, created.ID)
	if err != nil || ok {
		t.Fatalf("expected second delete to report false, got ok=%v err=%v", ok, err)
	}
}

func TestOrderKVRepository_CorruptedData(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryStore()
	_ = kv.Set(ctx, "custom_orders", "{not json")
	repo := NewOrderKVRepository(kv, "custom_orders")

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list for corrupted data, got %d", len(list))
	}

	created, err := repo.Create(ctx, sampleOrder("c-1"))
	if err != nil {
		t.Fatalf("expected create to overwrite corrupted data, got %v", err)
	}
	list, _ = repo.List(ctx)
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("expected only the new order, got %+v", list)
	}
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string) error         { return f.err }

func TestOrderKVRepository_BackendError(t *testing.T) {
	boom := errors.New("backend down")
	repo := NewOrderKVRepository(failingStore{err: boom}, "")

	if _, err := repo.List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if _, err := repo.Create(context.Background(), sampleOrder("c-1")); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
