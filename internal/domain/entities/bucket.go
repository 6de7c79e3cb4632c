package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product line of a bucket or an order.
//
// UnitPrice is a snapshot taken when the product was added to the bucket; it is
// never re-read from the catalog afterwards.
type LineItem struct {
	ProductRef string          `json:"product_ref"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// SumLineItems returns the sum of unit price times quantity over items.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Bucket is a named pre-submission cart.
//
// Lifecycle:
//   - created empty by a client and mutated freely while Submitted is false
//   - once submitted, Items are frozen and SubmittedOrderID points at the order
//     created from it (set once, never cleared)
type Bucket struct {
	ID               string     `json:"id"`
	OwnerID          string     `json:"owner_id"`
	Name             string     `json:"name"`
	Items            []LineItem `json:"items"`
	Submitted        bool       `json:"submitted"`
	SubmittedOrderID string     `json:"submitted_order_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Subtotal is zero for a nil or empty bucket.
func (b *Bucket) Subtotal() decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return SumLineItems(b.Items)
}

// ItemIndex returns the index of the line for productRef, or -1.
func (b *Bucket) ItemIndex(productRef string) int {
	for i, it := range b.Items {
		if it.ProductRef == productRef {
			return i
		}
	}
	return -1
}

// ItemCount is the total number of units across all lines.
func (b *Bucket) ItemCount() int {
	n := 0
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}
