package entities

import "github.com/shopspring/decimal"

// Product is a catalog entry. Prices are in RWF.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Unit             string          `json:"unit"`
	Price            decimal.Decimal `json:"price"`
	MinOrder         int             `json:"min_order"`
	DeliveryEstimate string          `json:"delivery_estimate"`
	Rating           float64         `json:"rating"`
	Reviews          int             `json:"reviews"`
}
