package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newDraft() Order {
	return Order{
		ID:            "ord-1",
		ClientID:      "u_1",
		Items:         []LineItem{{ProductRef: "1", UnitPrice: decimal.NewFromInt(1000), Quantity: 5}},
		Status:        OrderStatusDraft,
		PaymentStatus: PaymentStatusPendingQuote,
	}
}

func TestOrder_HappyPath(t *testing.T) {
	now := time.Now().UTC()
	o := newDraft()

	if err := o.Finalize(now); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if o.Status != OrderStatusQuoteRequested || o.PaymentStatus != PaymentStatusPendingQuote {
		t.Fatalf("unexpected state after finalize: %s/%s", o.Status, o.PaymentStatus)
	}
	if !o.Total().Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected subtotal-based total 5000, got %s", o.Total())
	}

	if err := o.ApplyBill(decimal.NewFromInt(5400), "HS-ABC123", "u_mgr", now); err != nil {
		t.Fatalf("bill: %v", err)
	}
	if o.Status != OrderStatusBilled || o.PaymentStatus != PaymentStatusUnpaid || o.OrderCode != "HS-ABC123" {
		t.Fatalf("unexpected state after bill: %+v", o)
	}
	if !o.Total().Equal(decimal.NewFromInt(5400)) {
		t.Fatalf("expected bill override 5400, got %s", o.Total())
	}
	if err := o.Validate(); err != nil {
		t.Fatalf("billed order invalid: %v", err)
	}

	if err := o.MarkPaid(Payment{Method: PaymentMethodGateway}, now); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if o.Status != OrderStatusAccepted || o.PaymentStatus != PaymentStatusPaid || o.Payment.PaidAt.IsZero() {
		t.Fatalf("unexpected state after pay: %+v", o)
	}

	if err := o.Fulfill(now); err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	if o.FulfilledAt == nil || o.IsOpen() {
		t.Fatalf("expected fulfilled closed order")
	}
	if err := o.Validate(); err != nil {
		t.Fatalf("fulfilled order invalid: %v", err)
	}
}

func TestOrder_InvalidTransitions(t *testing.T) {
	now := time.Now()

	t.Run("bill before finalize", func(t *testing.T) {
		o := newDraft()
		err := o.ApplyBill(decimal.NewFromInt(10), "HS-1", "", now)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if o.Bill != nil || o.Status != OrderStatusDraft {
			t.Fatalf("order mutated on failed transition: %+v", o)
		}
	})

	t.Run("bill twice", func(t *testing.T) {
		o := newDraft()
		_ = o.Finalize(now)
		_ = o.ApplyBill(decimal.NewFromInt(10), "HS-1", "", now)
		if err := o.ApplyBill(decimal.NewFromInt(20), "HS-2", "", now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if o.OrderCode != "HS-1" {
			t.Fatalf("order code overwritten")
		}
	})

	t.Run("non positive bill", func(t *testing.T) {
		o := newDraft()
		_ = o.Finalize(now)
		if err := o.ApplyBill(decimal.Zero, "HS-1", "", now); !errors.Is(err, ErrInvalidBillAmount) {
			t.Fatalf("expected ErrInvalidBillAmount, got %v", err)
		}
	})

	t.Run("pay before bill", func(t *testing.T) {
		o := newDraft()
		_ = o.Finalize(now)
		if err := o.MarkPaid(Payment{}, now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("pay twice", func(t *testing.T) {
		o := newDraft()
		_ = o.Finalize(now)
		_ = o.ApplyBill(decimal.NewFromInt(10), "HS-1", "", now)
		_ = o.MarkPaid(Payment{}, now)
		if err := o.MarkPaid(Payment{}, now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("pay rejected", func(t *testing.T) {
		o := newDraft()
		_ = o.Finalize(now)
		_ = o.ApplyBill(decimal.NewFromInt(10), "HS-1", "", now)
		if err := o.Reject(RejectReasonPriceTooHigh, "", now); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if err := o.CheckPayable(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("finalize empty draft", func(t *testing.T) {
		o := newDraft()
		o.Items = nil
		if err := o.Finalize(now); !errors.Is(err, ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("fulfill unpaid", func(t *testing.T) {
		o := newDraft()
		_ = o.Finalize(now)
		_ = o.ApplyBill(decimal.NewFromInt(10), "HS-1", "", now)
		if err := o.Fulfill(now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestOrder_ApproveReject(t *testing.T) {
	now := time.Now()
	billed := func() Order {
		o := newDraft()
		_ = o.Finalize(now)
		_ = o.ApplyBill(decimal.NewFromInt(10), "HS-1", "", now)
		return o
	}

	t.Run("approve then pay", func(t *testing.T) {
		o := billed()
		if err := o.Approve(now); err != nil {
			t.Fatalf("approve: %v", err)
		}
		if err := o.Validate(); err != nil {
			t.Fatalf("approved invalid: %v", err)
		}
		if err := o.MarkPaid(Payment{}, now); err != nil {
			t.Fatalf("pay approved: %v", err)
		}
		if err := o.Validate(); err != nil {
			t.Fatalf("accepted invalid: %v", err)
		}
	})

	t.Run("reject unknown reason", func(t *testing.T) {
		o := billed()
		if err := o.Reject("because", "", now); !errors.Is(err, ErrInvalidRejectReason) {
			t.Fatalf("expected ErrInvalidRejectReason, got %v", err)
		}
	})

	t.Run("reject other without note", func(t *testing.T) {
		o := billed()
		if err := o.Reject(RejectReasonOther, "   ", now); !errors.Is(err, ErrRejectNoteRequired) {
			t.Fatalf("expected ErrRejectNoteRequired, got %v", err)
		}
		if o.Status != OrderStatusBilled {
			t.Fatalf("status changed on failed reject")
		}
	})

	t.Run("reject other with note", func(t *testing.T) {
		o := billed()
		if err := o.Reject(RejectReasonOther, " wrong towels ", now); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if o.Decision.Note != "wrong towels" || o.Decision.Approved {
			t.Fatalf("unexpected decision: %+v", o.Decision)
		}
		if err := o.Validate(); err != nil {
			t.Fatalf("rejected invalid: %v", err)
		}
	})

	t.Run("approve quote request", func(t *testing.T) {
		o := newDraft()
		_ = o.Finalize(now)
		if err := o.Approve(now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	o := newDraft()
	o.Status = OrderStatusBilled
	o.PaymentStatus = PaymentStatusUnpaid
	if err := o.Validate(); !errors.Is(err, ErrInconsistentOrder) {
		t.Fatalf("expected ErrInconsistentOrder for billed order without bill, got %v", err)
	}

	o = newDraft()
	o.Status = "shipped"
	if err := o.Validate(); !errors.Is(err, ErrInconsistentOrder) {
		t.Fatalf("expected ErrInconsistentOrder for unknown status, got %v", err)
	}

	o = newDraft()
	o.Status = OrderStatusQuoteRequested
	o.Items = nil
	if err := o.Validate(); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderPatch_Apply(t *testing.T) {
	o := newDraft()
	code := "HS-XYZ999"
	status := OrderStatusQuoteRequested

	OrderPatch{OrderCode: &code, Status: &status}.Apply(&o)

	if o.OrderCode != code || o.Status != status {
		t.Fatalf("patch not applied: %+v", o)
	}
	if o.ClientID != "u_1" || len(o.Items) != 1 {
		t.Fatalf("untouched fields changed: %+v", o)
	}
}
