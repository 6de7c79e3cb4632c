package usecase

import (
	"context"
	"sort"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	topProductsLimit  = 5
	recentOrdersLimit = 8
)

type ClientDashboard struct {
	Orders  []entities.Order
	Buckets []entities.Bucket
}

type SupplierDashboard struct {
	OpenOrders []entities.Order
}

type ManagerDashboard struct {
	Orders       []entities.Order
	StatusCounts map[entities.OrderStatus]int
}

type ProductSales struct {
	ProductRef string
	Name       string
	Quantity   int
}

type AdminDashboard struct {
	TotalIncome  decimal.Decimal
	TotalOrders  int
	PaidOrders   int
	StatusCounts map[entities.OrderStatus]int
	TopProducts  []ProductSales
	RecentOrders []entities.Order
}

// IDashboardUseCase builds the per-role overviews. Drafts never appear.
//
// Access: client -> client; supplier -> supplier; manager -> manager and
// supplier; admin -> everything.
type IDashboardUseCase interface {
	Client(ctx context.Context, user entities.User) (ClientDashboard, error)
	Supplier(ctx context.Context, user entities.User) (SupplierDashboard, error)
	Manager(ctx context.Context, user entities.User) (ManagerDashboard, error)
	Admin(ctx context.Context, user entities.User) (AdminDashboard, error)
}

type DashboardUseCase struct {
	orders  interfaces.IOrderRepository
	buckets interfaces.IBucketRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(orders interfaces.IOrderRepository, buckets interfaces.IBucketRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, buckets: buckets}
}

func allowed(user entities.User, roles ...entities.Role) bool {
	if user.Role == entities.RoleAdmin {
		return true
	}
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

func (u *DashboardUseCase) Client(ctx context.Context, user entities.User) (ClientDashboard, error) {
	if !allowed(user, entities.RoleClient) {
		return ClientDashboard{}, ErrForbidden
	}

	orders, err := u.submittedOrders(ctx)
	if err != nil {
		return ClientDashboard{}, err
	}
	own := make([]entities.Order, 0)
	for _, o := range orders {
		if o.ClientID == user.ID {
			own = append(own, o)
		}
	}

	buckets, err := u.buckets.ListByOwner(ctx, user.ID)
	if err != nil {
		return ClientDashboard{}, err
	}
	return ClientDashboard{Orders: own, Buckets: buckets}, nil
}

func (u *DashboardUseCase) Supplier(ctx context.Context, user entities.User) (SupplierDashboard, error) {
	if !allowed(user, entities.RoleSupplier, entities.RoleManager) {
		return SupplierDashboard{}, ErrForbidden
	}

	orders, err := u.orders.List(ctx)
	if err != nil {
		return SupplierDashboard{}, err
	}
	open := make([]entities.Order, 0)
	for _, o := range orders {
		if o.IsOpen() {
			open = append(open, o)
		}
	}
	return SupplierDashboard{OpenOrders: open}, nil
}

func (u *DashboardUseCase) Manager(ctx context.Context, user entities.User) (ManagerDashboard, error) {
	if !allowed(user, entities.RoleManager) {
		return ManagerDashboard{}, ErrForbidden
	}

	orders, err := u.submittedOrders(ctx)
	if err != nil {
		return ManagerDashboard{}, err
	}
	return ManagerDashboard{Orders: orders, StatusCounts: countByStatus(orders)}, nil
}

func (u *DashboardUseCase) Admin(ctx context.Context, user entities.User) (AdminDashboard, error) {
	if !allowed(user) {
		return AdminDashboard{}, ErrForbidden
	}

	orders, err := u.submittedOrders(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}

	d := AdminDashboard{
		TotalIncome:  decimal.Zero,
		TotalOrders:  len(orders),
		StatusCounts: countByStatus(orders),
		TopProducts:  topProducts(orders, topProductsLimit),
	}
	for _, o := range orders {
		if o.PaymentStatus == entities.PaymentStatusPaid {
			d.PaidOrders++
			d.TotalIncome = d.TotalIncome.Add(o.Total())
		}
	}
	n := min(len(orders), recentOrdersLimit)
	d.RecentOrders = append([]entities.Order{}, orders[:n]...)
	return d, nil
}

func (u *DashboardUseCase) submittedOrders(ctx context.Context) ([]entities.Order, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if o.Status != entities.OrderStatusDraft {
			out = append(out, o)
		}
	}
	return out, nil
}

func countByStatus(orders []entities.Order) map[entities.OrderStatus]int {
	counts := map[entities.OrderStatus]int{}
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// topProducts ranks products by units ordered, ties broken by name.
func topProducts(orders []entities.Order, limit int) []ProductSales {
	byRef := map[string]*ProductSales{}
	for _, o := range orders {
		for _, it := range o.Items {
			ps, ok := byRef[it.ProductRef]
			if !ok {
				ps = &ProductSales{ProductRef: it.ProductRef, Name: it.Name}
				byRef[it.ProductRef] = ps
			}
			ps.Quantity += it.Quantity
		}
	}

	out := make([]ProductSales, 0, len(byRef))
	for _, ps := range byRef {
		out = append(out, *ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
