package response

import (
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

type ClientDashboardResponse struct {
	Orders  []OrderResponse  `json:"orders"`
	Buckets []BucketResponse `json:"buckets"`
}

type SupplierDashboardResponse struct {
	OpenOrders []OrderResponse `json:"open_orders"`
}

type ManagerDashboardResponse struct {
	Orders       []OrderResponse `json:"orders"`
	StatusCounts map[string]int  `json:"status_counts"`
}

type ProductSalesResponse struct {
	ProductRef string `json:"product_ref"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type AdminDashboardResponse struct {
	TotalIncome  decimal.Decimal        `json:"total_income"`
	TotalOrders  int                    `json:"total_orders"`
	PaidOrders   int                    `json:"paid_orders"`
	StatusCounts map[string]int         `json:"status_counts"`
	TopProducts  []ProductSalesResponse `json:"top_products"`
	RecentOrders []OrderResponse        `json:"recent_orders"`
}

func statusCounts(in map[entities.OrderStatus]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func FromClientDashboard(d usecase.ClientDashboard) ClientDashboardResponse {
	return ClientDashboardResponse{Orders: FromOrders(d.Orders), Buckets: FromBuckets(d.Buckets)}
}

func FromSupplierDashboard(d usecase.SupplierDashboard) SupplierDashboardResponse {
	return SupplierDashboardResponse{OpenOrders: FromOrders(d.OpenOrders)}
}

func FromManagerDashboard(d usecase.ManagerDashboard) ManagerDashboardResponse {
	return ManagerDashboardResponse{Orders: FromOrders(d.Orders), StatusCounts: statusCounts(d.StatusCounts)}
}

func FromAdminDashboard(d usecase.AdminDashboard) AdminDashboardResponse {
	top := make([]ProductSalesResponse, 0, len(d.TopProducts))
	for _, p := range d.TopProducts {
		top = append(top, ProductSalesResponse{ProductRef: p.ProductRef, Name: p.Name, Quantity: p.Quantity})
	}
	return AdminDashboardResponse{
		TotalIncome:  d.TotalIncome,
		TotalOrders:  d.TotalOrders,
		PaidOrders:   d.PaidOrders,
		StatusCounts: statusCounts(d.StatusCounts),
		TopProducts:  top,
		RecentOrders: FromOrders(d.RecentOrders),
	}
}
