package catalog

import (
	"context"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// StaticCatalog serves the seeded hotel-supply products from memory.
type StaticCatalog struct {
	products []entities.Product
	byID     map[string]entities.Product
}

var _ interfaces.IProductCatalog = (*StaticCatalog)(nil)

func NewStaticCatalog(products []entities.Product) *StaticCatalog {
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &StaticCatalog{products: products, byID: byID}
}

// NewSeededCatalog returns the default storefront catalog.
func NewSeededCatalog() *StaticCatalog {
	return NewStaticCatalog(SeedProducts())
}

func (c *StaticCatalog) List(_ context.Context) ([]entities.Product, error) {
	out := make([]entities.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *StaticCatalog) GetByID(_ context.Context, id string) (entities.Product, error) {
	return c.byID[id], nil
}

func SeedProducts() []entities.Product {
	return []entities.Product{
		{
			ID:               "1",
			Name:             "Premium Bath Towels",
			Description:      "100% cotton, 600 GSM, luxury hotel quality",
			Category:         "linens",
			Unit:             "per pack of 10",
			Price:            decimal.NewFromInt(45000),
			MinOrder:         5,
			DeliveryEstimate: "2-3 days",
			Rating:           4.8,
			Reviews:          124,
		},
		{
			ID:               "2",
			Name:             "Eco Shampoo Bottles",
			Description:      "Biodegradable, 200ml, various scents available",
			Category:         "toiletries",
			Unit:             "per box of 50",
			Price:            decimal.NewFromInt(28000),
			MinOrder:         2,
			DeliveryEstimate: "1-2 days",
			Rating:           4.6,
			Reviews:          89,
		},
		{
			ID:               "3",
			Name:             "Professional Cleaning Kit",
			Description:      "Complete set for hotel room maintenance",
			Category:         "cleaning",
			Unit:             "per kit",
			Price:            decimal.NewFromInt(120000),
			MinOrder:         1,
			DeliveryEstimate: "3-4 days",
			Rating:           4.9,
			Reviews:          67,
		},
		{
			ID:               "4",
			Name:             "Luxury Bath Amenities",
			Description:      "Soap, shampoo, conditioner & lotion set",
			Category:         "amenities",
			Unit:             "per set of 4",
			Price:            decimal.NewFromInt(35000),
			MinOrder:         10,
			DeliveryEstimate: "2 days",
			Rating:           4.7,
			Reviews:          156,
		},
		{
			ID:               "5",
			Name:             "Ceramic Dinnerware Set",
			Description:      "Elegant white ceramic, restaurant quality",
			Category:         "dining",
			Unit:             "per set of 12",
			Price:            decimal.NewFromInt(85000),
			MinOrder:         3,
			DeliveryEstimate: "4-5 days",
			Rating:           4.5,
			Reviews:          78,
		},
		{
			ID:               "6",
			Name:             "Hotel Bed Linens",
			Description:      "300 thread count, king size sheets",
			Category:         "linens",
			Unit:             "per set",
			Price:            decimal.NewFromInt(65000),
			MinOrder:         4,
			DeliveryEstimate: "3 days",
			Rating:           4.8,
			Reviews:          203,
		},
	}
}
