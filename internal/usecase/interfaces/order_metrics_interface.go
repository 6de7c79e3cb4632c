package interfaces

import "ndaje_storefront/internal/domain/entities"

// IOrderMetrics receives order lifecycle events for monitoring.
type IOrderMetrics interface {
	ObserveTransition(from, to entities.OrderStatus)
	ObservePayment(method entities.PaymentMethod, outcome string)
}
