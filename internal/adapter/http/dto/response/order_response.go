package response

import (
	"time"

	"ndaje_storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	ProductRef string          `json:"product_ref"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

type DecisionResponse struct {
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	Note      string    `json:"note,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

type PaymentResponse struct {
	Method            string         `json:"method"`
	ProviderPaymentID string         `json:"provider_payment_id,omitempty"`
	ProviderStatus    string         `json:"provider_status,omitempty"`
	ProviderResponse  map[string]any `json:"provider_response,omitempty"`
	ConfirmedBy       string         `json:"confirmed_by,omitempty"`
	PaidAt            time.Time      `json:"paid_at"`
}

// OrderResponse flattens the bill onto the order the way the storefront
// renders it.
type OrderResponse struct {
	ID            string             `json:"id"`
	OrderCode     string             `json:"order_code,omitempty"`
	ClientID      string             `json:"client_id"`
	ClientName    string             `json:"client_name"`
	BucketID      string             `json:"bucket_id,omitempty"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	BillAmount    *decimal.Decimal   `json:"bill_amount,omitempty"`
	BilledAt      *time.Time         `json:"billed_at,omitempty"`
	Decision      *DecisionResponse  `json:"decision,omitempty"`
	Payment       *PaymentResponse   `json:"payment,omitempty"`
	FulfilledAt   *time.Time         `json:"fulfilled_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ProductRef: it.ProductRef,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			LineTotal:  it.LineTotal(),
		})
	}
	return out
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:            o.ID,
		OrderCode:     o.OrderCode,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		BucketID:      o.BucketID,
		Items:         FromLineItems(o.Items),
		Subtotal:      o.Subtotal(),
		Total:         o.Total(),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		FulfilledAt:   o.FulfilledAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Bill != nil {
		amount, at := o.Bill.Amount, o.Bill.BilledAt
		res.BillAmount = &amount
		res.BilledAt = &at
	}
	if o.Decision != nil {
		res.Decision = &DecisionResponse{
			Approved:  o.Decision.Approved,
			Reason:    string(o.Decision.Reason),
			Note:      o.Decision.Note,
			DecidedAt: o.Decision.DecidedAt,
		}
	}
	if o.Payment != nil {
		res.Payment = &PaymentResponse{
			Method:            string(o.Payment.Method),
			ProviderPaymentID: o.Payment.ProviderPaymentID,
			ProviderStatus:    o.Payment.ProviderStatus,
			ProviderResponse:  o.Payment.ProviderResponse,
			ConfirmedBy:       o.Payment.ConfirmedBy,
			PaidAt:            o.Payment.PaidAt,
		}
	}
	return res
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
