package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is orthogonal to OrderStatus and only moves forward:
// pending_quote -> unpaid -> paid.
type PaymentStatus string

const (
	PaymentStatusPendingQuote PaymentStatus = "pending_quote"
	PaymentStatusUnpaid       PaymentStatus = "unpaid"
	PaymentStatusPaid         PaymentStatus = "paid"
)

// PaymentMethod records how an order ended up paid.
type PaymentMethod string

const (
	// PaymentMethodGateway is a client payment charged through the payment gateway
	// (mock or Mercado Pago).
	PaymentMethodGateway PaymentMethod = "gateway"
	// PaymentMethodManual is a manager/admin confirming a payment received offline.
	PaymentMethodManual PaymentMethod = "manual"
)

// Bill is attached by a privileged role when pricing a quote.
type Bill struct {
	Amount   decimal.Decimal `json:"amount"`
	BilledAt time.Time       `json:"billed_at"`
	BilledBy string          `json:"billed_by,omitempty"`
}

// Payment is present only on paid orders.
//
// ProviderResponse keeps the gateway body as returned, for traceability.
type Payment struct {
	Method            PaymentMethod  `json:"method"`
	ProviderPaymentID string         `json:"provider_payment_id,omitempty"`
	ProviderStatus    string         `json:"provider_status,omitempty"`
	ProviderResponse  map[string]any `json:"provider_response,omitempty"`
	ConfirmedBy       string         `json:"confirmed_by,omitempty"`
	PaidAt            time.Time      `json:"paid_at"`
}
