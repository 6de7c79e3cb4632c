package entities

import "time"

// RejectReason is the enumerated reason a client gives when rejecting a bill.
type RejectReason string

const (
	RejectReasonPriceTooHigh       RejectReason = "price_too_high"
	RejectReasonDeliveryTooSlow    RejectReason = "delivery_too_slow"
	RejectReasonFoundOtherSupplier RejectReason = "found_other_supplier"
	RejectReasonNoLongerNeeded     RejectReason = "no_longer_needed"
	// RejectReasonOther requires a free-text note.
	RejectReasonOther RejectReason = "other"
)

var RejectReasons = []RejectReason{
	RejectReasonPriceTooHigh,
	RejectReasonDeliveryTooSlow,
	RejectReasonFoundOtherSupplier,
	RejectReasonNoLongerNeeded,
	RejectReasonOther,
}

func (r RejectReason) Valid() bool {
	for _, v := range RejectReasons {
		if r == v {
			return true
		}
	}
	return false
}

// Decision is the client's answer to a bill.
type Decision struct {
	Approved  bool         `json:"approved"`
	Reason    RejectReason `json:"reason,omitempty"`
	Note      string       `json:"note,omitempty"`
	DecidedAt time.Time    `json:"decided_at"`
}
