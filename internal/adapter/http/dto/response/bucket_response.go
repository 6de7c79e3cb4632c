package response

import (
	"time"

	"ndaje_storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BucketResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Items            []LineItemResponse `json:"items"`
	ItemCount        int                `json:"item_count"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	Submitted        bool               `json:"submitted"`
	SubmittedOrderID string             `json:"submitted_order_id,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromBucket(b entities.Bucket) BucketResponse {
	return BucketResponse{
		ID:               b.ID,
		Name:             b.Name,
		Items:            FromLineItems(b.Items),
		ItemCount:        b.ItemCount(),
		Subtotal:         b.Subtotal(),
		Submitted:        b.Submitted,
		SubmittedOrderID: b.SubmittedOrderID,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func FromBuckets(buckets []entities.Bucket) []BucketResponse {
	out := make([]BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, FromBucket(b))
	}
	return out
}
