package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a quote/order.
//
// Status graph:
//
//	draft -> quote_requested -> billed -> approved -> accepted -> fulfilled
//	                               |  \-> rejected
//	                               \----------------> accepted (paid without explicit approval)
//
// draft only exists while a bucket submission is in flight; see QuoteUseCase.Submit.
type OrderStatus string

const (
	OrderStatusDraft          OrderStatus = "draft"
	OrderStatusQuoteRequested OrderStatus = "quote_requested"
	OrderStatusBilled         OrderStatus = "billed"
	OrderStatusApproved       OrderStatus = "approved"
	OrderStatusRejected       OrderStatus = "rejected"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusFulfilled      OrderStatus = "fulfilled"
)

var (
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidBillAmount   = errors.New("invalid bill amount")
	ErrInvalidRejectReason = errors.New("invalid reject reason")
	ErrRejectNoteRequired  = errors.New("reject note required for reason other")
	ErrInconsistentOrder   = errors.New("order fields inconsistent with status")
)

var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:          {OrderStatusQuoteRequested},
	OrderStatusQuoteRequested: {OrderStatusBilled},
	OrderStatusBilled:         {OrderStatusApproved, OrderStatusRejected, OrderStatusAccepted},
	OrderStatusApproved:       {OrderStatusAccepted},
	OrderStatusAccepted:       {OrderStatusFulfilled},
}

// CanTransition reports whether next is reachable from current in one step.
func CanTransition(current, next OrderStatus) bool {
	for _, s := range allowedTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// Order is a submitted quote and everything that happens to it afterwards.
//
// Client fields are a snapshot taken at submission and are not re-synced.
// Bill, Decision, Payment and FulfilledAt are only ever set by the transition
// methods below, so each status carries exactly the fields valid for it
// (checked by Validate).
type Order struct {
	ID            string        `json:"id"`
	OrderCode     string        `json:"order_code,omitempty"`
	ClientID      string        `json:"client_id"`
	ClientName    string        `json:"client_name"`
	BucketID      string        `json:"bucket_id,omitempty"`
	Items         []LineItem    `json:"items"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Bill        *Bill      `json:"bill,omitempty"`
	Decision    *Decision  `json:"decision,omitempty"`
	Payment     *Payment   `json:"payment,omitempty"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
}

func (o Order) Subtotal() decimal.Decimal {
	return SumLineItems(o.Items)
}

// Total is the bill amount once billed, the item subtotal before that.
func (o Order) Total() decimal.Decimal {
	if o.Bill != nil {
		return o.Bill.Amount
	}
	return o.Subtotal()
}

// IsOpen reports whether a supplier still has work to do for the order.
func (o Order) IsOpen() bool {
	switch o.Status {
	case OrderStatusDraft, OrderStatusRejected, OrderStatusFulfilled:
		return false
	}
	return true
}

func (o *Order) transition(next OrderStatus, now time.Time) error {
	if !CanTransition(o.Status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = now
	return nil
}

// Finalize turns a draft into a quote request.
func (o *Order) Finalize(now time.Time) error {
	if o.Status == OrderStatusDraft && len(o.Items) == 0 {
		return ErrEmptyOrder
	}
	if err := o.transition(OrderStatusQuoteRequested, now); err != nil {
		return err
	}
	o.PaymentStatus = PaymentStatusPendingQuote
	return nil
}

// ApplyBill prices a quote request and gives it a display code.
func (o *Order) ApplyBill(amount decimal.Decimal, orderCode, billedBy string, now time.Time) error {
	if !amount.IsPositive() {
		return ErrInvalidBillAmount
	}
	if err := o.transition(OrderStatusBilled, now); err != nil {
		return err
	}
	o.PaymentStatus = PaymentStatusUnpaid
	o.OrderCode = orderCode
	o.Bill = &Bill{Amount: amount, BilledAt: now, BilledBy: billedBy}
	return nil
}

func (o *Order) Approve(now time.Time) error {
	if err := o.transition(OrderStatusApproved, now); err != nil {
		return err
	}
	o.Decision = &Decision{Approved: true, DecidedAt: now}
	return nil
}

func (o *Order) Reject(reason RejectReason, note string, now time.Time) error {
	note = strings.TrimSpace(note)
	if !reason.Valid() {
		return ErrInvalidRejectReason
	}
	if reason == RejectReasonOther && note == "" {
		return ErrRejectNoteRequired
	}
	if err := o.transition(OrderStatusRejected, now); err != nil {
		return err
	}
	o.Decision = &Decision{Approved: false, Reason: reason, Note: note, DecidedAt: now}
	return nil
}

// CheckPayable fails unless the order is billed (or approved) and still unpaid.
func (o Order) CheckPayable() error {
	if o.PaymentStatus != PaymentStatusUnpaid || !CanTransition(o.Status, OrderStatusAccepted) {
		return fmt.Errorf("%w: cannot pay order in status %s/%s", ErrInvalidTransition, o.Status, o.PaymentStatus)
	}
	return nil
}

func (o *Order) MarkPaid(p Payment, now time.Time) error {
	if err := o.CheckPayable(); err != nil {
		return err
	}
	if err := o.transition(OrderStatusAccepted, now); err != nil {
		return err
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = now
	}
	o.PaymentStatus = PaymentStatusPaid
	o.Payment = &p
	return nil
}

func (o *Order) Fulfill(now time.Time) error {
	if err := o.transition(OrderStatusFulfilled, now); err != nil {
		return err
	}
	at := now
	o.FulfilledAt = &at
	return nil
}

// Validate checks that the optional fields match what Status allows.
func (o Order) Validate() error {
	want := struct {
		bill, decision, payment, fulfilled bool
		paymentStatus                      PaymentStatus
	}{}

	switch o.Status {
	case OrderStatusDraft:
		want.paymentStatus = PaymentStatusPendingQuote
	case OrderStatusQuoteRequested:
		if len(o.Items) == 0 {
			return ErrEmptyOrder
		}
		want.paymentStatus = PaymentStatusPendingQuote
	case OrderStatusBilled:
		want.bill, want.paymentStatus = true, PaymentStatusUnpaid
	case OrderStatusApproved, OrderStatusRejected:
		want.bill, want.decision, want.paymentStatus = true, true, PaymentStatusUnpaid
	case OrderStatusAccepted:
		want.bill, want.payment, want.paymentStatus = true, true, PaymentStatusPaid
		// approval before payment is optional
		want.decision = o.Decision != nil
	case OrderStatusFulfilled:
		want.bill, want.payment, want.fulfilled, want.paymentStatus = true, true, true, PaymentStatusPaid
		want.decision = o.Decision != nil
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInconsistentOrder, o.Status)
	}

	if (o.Bill != nil) != want.bill ||
		(o.Decision != nil) != want.decision ||
		(o.Payment != nil) != want.payment ||
		(o.FulfilledAt != nil) != want.fulfilled ||
		o.PaymentStatus != want.paymentStatus {
		return fmt.Errorf("%w: status=%s payment_status=%s", ErrInconsistentOrder, o.Status, o.PaymentStatus)
	}
	if o.Status == OrderStatusApproved && !o.Decision.Approved {
		return fmt.Errorf("%w: approved order carries a rejection", ErrInconsistentOrder)
	}
	if o.Status == OrderStatusRejected && o.Decision.Approved {
		return fmt.Errorf("%w: rejected order carries an approval", ErrInconsistentOrder)
	}
	return nil
}

// OrderPatch is a shallow overwrite: every non-nil field replaces the stored one.
type OrderPatch struct {
	OrderCode     *string
	ClientID      *string
	ClientName    *string
	Items         *[]LineItem
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	Bill          *Bill
	Decision      *Decision
	Payment       *Payment
	FulfilledAt   *time.Time
}

func (p OrderPatch) Apply(o *Order) {
	if p.OrderCode != nil {
		o.OrderCode = *p.OrderCode
	}
	if p.ClientID != nil {
		o.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		o.ClientName = *p.ClientName
	}
	if p.Items != nil {
		o.Items = append([]LineItem(nil), (*p.Items)...)
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		o.PaymentStatus = *p.PaymentStatus
	}
	if p.Bill != nil {
		b := *p.Bill
		o.Bill = &b
	}
	if p.Decision != nil {
		d := *p.Decision
		o.Decision = &d
	}
	if p.Payment != nil {
		pm := *p.Payment
		o.Payment = &pm
	}
	if p.FulfilledAt != nil {
		at := *p.FulfilledAt
		o.FulfilledAt = &at
	}
}
