package response

import (
	"ndaje_storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Unit             string          `json:"unit"`
	Price            decimal.Decimal `json:"price"`
	MinOrder         int             `json:"min_order"`
	DeliveryEstimate string          `json:"delivery"`
	Rating           float64         `json:"rating"`
	Reviews          int             `json:"reviews"`
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:               p.ID,
			Name:             p.Name,
			Description:      p.Description,
			Category:         p.Category,
			Unit:             p.Unit,
			Price:            p.Price,
			MinOrder:         p.MinOrder,
			DeliveryEstimate: p.DeliveryEstimate,
			Rating:           p.Rating,
			Reviews:          p.Reviews,
		})
	}
	return out
}
