package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ndaje_storefront/internal/adapter/persistence/repository"
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/infrastructure/database"
	mock_interfaces "ndaje_storefront/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func seedOrder(t *testing.T, repo *repository.OrderKVRepository, o entities.Order) entities.Order {
	t.Helper()
	created, err := repo.Create(context.Background(), o)
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return created
}

func line(ref, name string, qty int) entities.LineItem {
	return entities.LineItem{ProductRef: ref, Name: name, UnitPrice: decimal.NewFromInt(100), Quantity: qty}
}

func newDashboardFixture(t *testing.T) (*DashboardUseCase, *repository.OrderKVRepository, *repository.BucketKVRepository) {
	t.Helper()
	kv := database.NewMemoryStore()
	orders := repository.NewOrderKVRepository(kv, "")
	buckets := repository.NewBucketKVRepository(kv, "")
	return NewDashboardUseCase(orders, buckets), orders, buckets
}

func TestDashboardUseCase_RoleGates(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newDashboardFixture(t)
	supplier := entities.User{ID: "s", Role: entities.RoleSupplier}
	admin := entities.User{ID: "a", Role: entities.RoleAdmin}

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"client on client", func() error { _, err := uc.Client(ctx, hotelClient); return err }, nil},
		{"client on supplier", func() error { _, err := uc.Supplier(ctx, hotelClient); return err }, ErrForbidden},
		{"supplier on supplier", func() error { _, err := uc.Supplier(ctx, supplier); return err }, nil},
		{"supplier on manager", func() error { _, err := uc.Manager(ctx, supplier); return err }, ErrForbidden},
		{"manager on supplier", func() error { _, err := uc.Supplier(ctx, manager); return err }, nil},
		{"manager on manager", func() error { _, err := uc.Manager(ctx, manager); return err }, nil},
		{"manager on admin", func() error { _, err := uc.Admin(ctx, manager); return err }, ErrForbidden},
		{"manager on client", func() error { _, err := uc.Client(ctx, manager); return err }, ErrForbidden},
		{"admin on client", func() error { _, err := uc.Client(ctx, admin); return err }, nil},
		{"admin on admin", func() error { _, err := uc.Admin(ctx, admin); return err }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDashboardUseCase_ClientAndSupplier(t *testing.T) {
	ctx := context.Background()
	uc, orders, buckets := newDashboardFixture(t)

	seedOrder(t, orders, entities.Order{ClientID: hotelClient.ID, Status: entities.OrderStatusDraft})
	seedOrder(t, orders, entities.Order{ClientID: hotelClient.ID, Status: entities.OrderStatusBilled})
	seedOrder(t, orders, entities.Order{ClientID: otherClient.ID, Status: entities.OrderStatusRejected})
	seedOrder(t, orders, entities.Order{ClientID: otherClient.ID, Status: entities.OrderStatusFulfilled})
	seedOrder(t, orders, entities.Order{ClientID: otherClient.ID, Status: entities.OrderStatusAccepted})
	_, _ = buckets.Create(ctx, entities.Bucket{OwnerID: hotelClient.ID, Name: "Trial"})

	cd, err := uc.Client(ctx, hotelClient)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(cd.Orders) != 1 || cd.Orders[0].Status != entities.OrderStatusBilled || len(cd.Buckets) != 1 {
		t.Fatalf("unexpected client dashboard %+v", cd)
	}

	sd, err := uc.Supplier(ctx, entities.User{ID: "s", Role: entities.RoleSupplier})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(sd.OpenOrders) != 2 {
		t.Fatalf("expected billed and accepted orders open, got %+v", sd.OpenOrders)
	}
}

func TestDashboardUseCase_ManagerAndAdmin(t *testing.T) {
	ctx := context.Background()
	uc, orders, _ := newDashboardFixture(t)
	now := time.Now().UTC()

	seedOrder(t, orders, entities.Order{Status: entities.OrderStatusDraft, Items: []entities.LineItem{line("9", "Ignored", 100)}})
	seedOrder(t, orders, entities.Order{
		Status: entities.OrderStatusAccepted, PaymentStatus: entities.PaymentStatusPaid,
		Items: []entities.LineItem{line("1", "Towels", 5), line("2", "Shampoo", 1)},
		Bill:  &entities.Bill{Amount: decimal.NewFromInt(5400), BilledAt: now},
	})
	seedOrder(t, orders, entities.Order{
		Status: entities.OrderStatusFulfilled, PaymentStatus: entities.PaymentStatusPaid,
		Items: []entities.LineItem{line("2", "Shampoo", 3)},
		Bill:  &entities.Bill{Amount: decimal.NewFromInt(1000), BilledAt: now},
	})
	seedOrder(t, orders, entities.Order{
		Status: entities.OrderStatusBilled, PaymentStatus: entities.PaymentStatusUnpaid,
		Items: []entities.LineItem{line("3", "Kit", 2)},
		Bill:  &entities.Bill{Amount: decimal.NewFromInt(9999), BilledAt: now},
	})
	for i := range 6 {
		ref := fmt.Sprintf("x%d", i)
		seedOrder(t, orders, entities.Order{Status: entities.OrderStatusQuoteRequested, Items: []entities.LineItem{line(ref, "Extra "+ref, 1)}})
	}

	md, err := uc.Manager(ctx, manager)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(md.Orders) != 9 || md.StatusCounts[entities.OrderStatusQuoteRequested] != 6 || md.StatusCounts[entities.OrderStatusDraft] != 0 {
		t.Fatalf("unexpected manager dashboard counts %v (%d orders)", md.StatusCounts, len(md.Orders))
	}

	ad, err := uc.Admin(ctx, entities.User{ID: "a", Role: entities.RoleAdmin})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !ad.TotalIncome.Equal(decimal.NewFromInt(6400)) {
		t.Fatalf("expected income 6400, got %s", ad.TotalIncome)
	}
	if ad.TotalOrders != 9 || ad.PaidOrders != 2 {
		t.Fatalf("expected 9 orders and 2 paid, got %d and %d", ad.TotalOrders, ad.PaidOrders)
	}
	if len(ad.TopProducts) != 5 {
		t.Fatalf("expected top 5 products, got %d", len(ad.TopProducts))
	}
	if ad.TopProducts[0].ProductRef != "1" || ad.TopProducts[1].ProductRef != "2" || ad.TopProducts[1].Quantity != 4 {
		t.Fatalf("unexpected ranking %+v", ad.TopProducts)
	}
	if len(ad.RecentOrders) != 8 {
		t.Fatalf("expected 8 recent orders, got %d", len(ad.RecentOrders))
	}
	if ad.RecentOrders[0].Status != entities.OrderStatusQuoteRequested {
		t.Fatalf("expected newest order first, got %s", ad.RecentOrders[0].Status)
	}
}

func TestDashboardUseCase_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewDashboardUseCase(orders, nil)

	boom := errors.New("db")
	orders.EXPECT().List(gomock.Any()).Return(nil, boom)
	if _, err := uc.Manager(context.Background(), manager); !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}
}
