package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentStatusApproved is the provider status of a successful charge.
const PaymentStatusApproved = "approved"

// IPaymentGateway abstracts the payment provider used when a client pays a bill.
//
// The quote use case builds the request payload from the order and persists the
// provider response on the order for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
