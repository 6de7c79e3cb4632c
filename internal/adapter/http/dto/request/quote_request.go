package request

import (
	"ndaje_storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BillRequest accepts the amount as a JSON number or string.
type BillRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type RejectRequest struct {
	Reason entities.RejectReason `json:"reason" binding:"required,reject_reason"`
	Note   string                `json:"note"`
}
