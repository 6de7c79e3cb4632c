package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrEmptyBucket         = errors.New("bucket has no items")
	ErrForbidden           = errors.New("operation not allowed for role")
	ErrPaymentDeclined     = errors.New("payment declined")
	ErrPaymentGateway      = errors.New("payment gateway failure")
	ErrGatewayNotAvailable = errors.New("payment gateway not configured")
)

// IQuoteUseCase drives an order from bucket submission to fulfilment.
//
//	Submit      bucket -> quote_requested
//	Bill        quote_requested -> billed          (manager, admin)
//	Approve     billed -> approved                 (owning client)
//	Reject      billed -> rejected                 (owning client)
//	Pay         billed|approved -> accepted (paid) (owning client, via gateway)
//	MarkAsPaid  billed|approved -> accepted (paid) (manager, admin, manual)
//	Fulfill     accepted -> fulfilled              (manager, admin)
type IQuoteUseCase interface {
	Submit(ctx context.Context, user entities.User, bucketID string) (entities.Order, error)
	RecoverDrafts(ctx context.Context, olderThan time.Duration) (RecoveryReport, error)
	Bill(ctx context.Context, actor entities.User, orderID string, amount decimal.Decimal) (entities.Order, error)
	Approve(ctx context.Context, user entities.User, orderID string) (entities.Order, error)
	Reject(ctx context.Context, user entities.User, orderID string, reason entities.RejectReason, note string) (entities.Order, error)
	Pay(ctx context.Context, user entities.User, orderID string) (entities.Order, error)
	MarkAsPaid(ctx context.Context, actor entities.User, orderID string) (entities.Order, error)
	Fulfill(ctx context.Context, actor entities.User, orderID string) (entities.Order, error)
	Get(ctx context.Context, user entities.User, orderID string) (entities.Order, error)
	ListForClient(ctx context.Context, user entities.User) ([]entities.Order, error)
}

// QuoteSettings tunes the payment step.
type QuoteSettings struct {
	PaymentDelay time.Duration
	Currency     string
}

// RecoveryReport counts what RecoverDrafts did with abandoned drafts.
type RecoveryReport struct {
	Finalized int
	Discarded int
}

type QuoteUseCase struct {
	orders   interfaces.IOrderRepository
	buckets  interfaces.IBucketRepository
	gateway  interfaces.IPaymentGateway
	metrics  interfaces.IOrderMetrics
	settings QuoteSettings

	payments  singleflight.Group
	flightsMu sync.Mutex
	flights   map[string]*payFlight
	flightSeq uint64

	now      func() time.Time
	codes    func() string
	wait     func(ctx context.Context, d time.Duration) error
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	orders interfaces.IOrderRepository,
	buckets interfaces.IBucketRepository,
	gateway interfaces.IPaymentGateway,
	metrics interfaces.IOrderMetrics,
	settings QuoteSettings,
) *QuoteUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &QuoteUseCase{
		orders:   orders,
		buckets:  buckets,
		gateway:  gateway,
		metrics:  metrics,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
		codes:    newOrderCode,
		wait:     sleepCtx,
	}
}

// Submit turns a bucket into a quote request in four persisted steps:
// create a draft order, mark the bucket submitted, copy the items frozen by
// that step, finalize. A crash between steps leaves a draft behind for
// RecoverDrafts.
func (u *QuoteUseCase) Submit(ctx context.Context, user entities.User, bucketID string) (entities.Order, error) {
	bucketID = strings.TrimSpace(bucketID)
	if bucketID == "" {
		return entities.Order{}, ErrInvalidBucketID
	}
	logrus.Infof("[quote][usecase] submit start bucket_id=%s client_id=%s", bucketID, user.ID)

	b, err := u.buckets.GetByID(ctx, bucketID)
	if err != nil {
		return entities.Order{}, err
	}
	if b.ID == "" || b.OwnerID != user.ID {
		return entities.Order{}, ErrBucketNotFound
	}
	if b.Submitted {
		return entities.Order{}, ErrBucketSubmitted
	}
	if len(b.Items) == 0 {
		return entities.Order{}, ErrEmptyBucket
	}

	draft, err := u.orders.Create(ctx, entities.Order{
		ClientID:      user.ID,
		ClientName:    clientDisplayName(user),
		BucketID:      b.ID,
		Items:         []entities.LineItem{},
		Status:        entities.OrderStatusDraft,
		PaymentStatus: entities.PaymentStatusPendingQuote,
	})
	if err != nil {
		logrus.Errorf("[quote][usecase] draft create failed bucket_id=%s err=%v", b.ID, err)
		return entities.Order{}, err
	}

	items, err := u.markBucketSubmitted(ctx, b.ID, draft.ID)
	if err != nil {
		if errors.Is(err, ErrBucketSubmitted) || errors.Is(err, ErrEmptyBucket) {
			// lost a race with another submit or an edit of the same bucket
			if _, delErr := u.orders.Delete(ctx, draft.ID); delErr != nil {
				logrus.Warnf("[quote][usecase] draft discard failed order_id=%s err=%v", draft.ID, delErr)
			}
		}
		logrus.Errorf("[quote][usecase] bucket submit failed bucket_id=%s order_id=%s err=%v", b.ID, draft.ID, err)
		return entities.Order{}, err
	}

	if err := u.copyItems(ctx, draft.ID, items); err != nil {
		logrus.Errorf("[quote][usecase] draft items failed order_id=%s err=%v", draft.ID, err)
		return entities.Order{}, err
	}

	order, err := u.transition(ctx, draft.ID, func(o *entities.Order) error {
		return o.Finalize(u.now())
	})
	if err != nil {
		logrus.Errorf("[quote][usecase] finalize failed order_id=%s err=%v", draft.ID, err)
		return entities.Order{}, err
	}
	logrus.Infof("[quote][usecase] submit success order_id=%s bucket_id=%s items=%d", order.ID, b.ID, len(order.Items))
	return order, nil
}

// RecoverDrafts resumes or discards drafts older than olderThan. A draft whose
// bucket already points at it, or whose bucket is still open with items, is
// completed; anything else is deleted.
func (u *QuoteUseCase) RecoverDrafts(ctx context.Context, olderThan time.Duration) (RecoveryReport, error) {
	var report RecoveryReport

	all, err := u.orders.List(ctx)
	if err != nil {
		return report, err
	}
	cutoff := u.now().Add(-olderThan)

	var errs []error
	for _, o := range all {
		if o.Status != entities.OrderStatusDraft || o.CreatedAt.After(cutoff) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		finalized, err := u.recoverDraft(ctx, o)
		if err != nil {
			logrus.Warnf("[quote][recovery] draft recovery failed order_id=%s err=%v", o.ID, err)
			errs = append(errs, fmt.Errorf("order %s: %w", o.ID, err))
			continue
		}
		if finalized {
			report.Finalized++
		} else {
			report.Discarded++
		}
	}

	if report.Finalized > 0 || report.Discarded > 0 {
		logrus.Infof("[quote][recovery] drafts recovered finalized=%d discarded=%d", report.Finalized, report.Discarded)
	}
	return report, errors.Join(errs...)
}

func (u *QuoteUseCase) recoverDraft(ctx context.Context, o entities.Order) (bool, error) {
	var b entities.Bucket
	if o.BucketID != "" {
		var err error
		if b, err = u.buckets.GetByID(ctx, o.BucketID); err != nil {
			return false, err
		}
	}

	switch {
	case b.ID != "" && b.Submitted && b.SubmittedOrderID == o.ID:
		if len(o.Items) == 0 {
			if err := u.copyItems(ctx, o.ID, b.Items); err != nil {
				return false, err
			}
		}
	case b.ID != "" && !b.Submitted && len(b.Items) > 0:
		items, err := u.markBucketSubmitted(ctx, b.ID, o.ID)
		if err != nil {
			return false, err
		}
		if err := u.copyItems(ctx, o.ID, items); err != nil {
			return false, err
		}
	default:
		_, err := u.orders.Delete(ctx, o.ID)
		return false, err
	}

	_, err := u.transition(ctx, o.ID, func(o *entities.Order) error {
		return o.Finalize(u.now())
	})
	return err == nil, err
}

func (u *QuoteUseCase) copyItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	_, err := u.mutateOrder(ctx, orderID, func(o *entities.Order) error {
		if o.Status != entities.OrderStatusDraft {
			return fmt.Errorf("%w: items are frozen in status %s", entities.ErrInvalidTransition, o.Status)
		}
		o.Items = append([]entities.LineItem(nil), items...)
		return nil
	})
	return err
}

// markBucketSubmitted freezes the bucket and returns the items it held at
// that moment; those are the lines the order must carry.
func (u *QuoteUseCase) markBucketSubmitted(ctx context.Context, bucketID, orderID string) ([]entities.LineItem, error) {
	var frozen []entities.LineItem
	updated, err := u.buckets.Mutate(ctx, bucketID, func(b *entities.Bucket) error {
		if b.Submitted {
			return ErrBucketSubmitted
		}
		if len(b.Items) == 0 {
			return ErrEmptyBucket
		}
		b.Submitted = true
		b.SubmittedOrderID = orderID
		frozen = append([]entities.LineItem(nil), b.Items...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated.ID == "" {
		return nil, ErrBucketNotFound
	}
	return frozen, nil
}

func (u *QuoteUseCase) Bill(ctx context.Context, actor entities.User, orderID string, amount decimal.Decimal) (entities.Order, error) {
	if !actor.Role.Privileged() {
		return entities.Order{}, ErrForbidden
	}
	if !amount.IsPositive() {
		return entities.Order{}, entities.ErrInvalidBillAmount
	}

	order, err := u.transition(ctx, orderID, func(o *entities.Order) error {
		return o.ApplyBill(amount, u.codes(), actor.ID, u.now())
	})
	if err != nil {
		return entities.Order{}, err
	}
	logrus.Infof("[quote][usecase] billed order_id=%s order_code=%s amount=%s by=%s", order.ID, order.OrderCode, amount.String(), actor.ID)
	return order, nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, user entities.User, orderID string) (entities.Order, error) {
	return u.transitionOwned(ctx, user, orderID, func(o *entities.Order) error {
		return o.Approve(u.now())
	})
}

func (u *QuoteUseCase) Reject(ctx context.Context, user entities.User, orderID string, reason entities.RejectReason, note string) (entities.Order, error) {
	return u.transitionOwned(ctx, user, orderID, func(o *entities.Order) error {
		return o.Reject(reason, note, u.now())
	})
}

// Pay charges the order total through the gateway. Concurrent calls for the
// same order share one charge; the state is checked again before it is saved.
func (u *QuoteUseCase) Pay(ctx context.Context, user entities.User, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	f := u.joinPayFlight(ctx, user.ID+"/"+orderID)
	defer u.leavePayFlight(f)

	ch := u.payments.DoChan(f.key, func() (any, error) {
		return u.pay(f.ctx, user, orderID)
	})
	select {
	case <-ctx.Done():
		logrus.Infof("[payment][usecase] pay caller gone order_id=%s err=%v", orderID, ctx.Err())
		return entities.Order{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			logrus.Debugf("[payment][usecase] pay call shared order_id=%s", orderID)
		}
		if res.Err != nil {
			return entities.Order{}, res.Err
		}
		return res.Val.(entities.Order), nil
	}
}

// payFlight is one shared charge attempt. Its context outlives any single
// caller and is cancelled when the last waiting caller leaves.
type payFlight struct {
	name    string
	key     string
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func (u *QuoteUseCase) joinPayFlight(parent context.Context, name string) *payFlight {
	u.flightsMu.Lock()
	defer u.flightsMu.Unlock()

	if f, ok := u.flights[name]; ok {
		f.waiters++
		return f
	}
	if u.flights == nil {
		u.flights = make(map[string]*payFlight)
	}
	u.flightSeq++
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	f := &payFlight{
		name:    name,
		key:     fmt.Sprintf("%s#%d", name, u.flightSeq),
		ctx:     ctx,
		cancel:  cancel,
		waiters: 1,
	}
	u.flights[name] = f
	return f
}

func (u *QuoteUseCase) leavePayFlight(f *payFlight) {
	u.flightsMu.Lock()
	defer u.flightsMu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if u.flights[f.name] == f {
		delete(u.flights, f.name)
	}
}

func (u *QuoteUseCase) pay(ctx context.Context, user entities.User, orderID string) (entities.Order, error) {
	logrus.Infof("[payment][usecase] pay start order_id=%s client_id=%s", orderID, user.ID)
	if u.gateway == nil {
		return entities.Order{}, ErrGatewayNotAvailable
	}

	order, err := u.Get(ctx, user, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ClientID != user.ID {
		return entities.Order{}, ErrOrderNotFound
	}
	if err := order.CheckPayable(); err != nil {
		return entities.Order{}, err
	}

	if err := u.wait(ctx, u.settings.PaymentDelay); err != nil {
		logrus.Warnf("[payment][usecase] pay cancelled order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}

	payload, err := u.paymentPayload(order, user)
	if err != nil {
		return entities.Order{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.metrics.ObservePayment(entities.PaymentMethodGateway, "error")
		logrus.Errorf("[payment][usecase] gateway failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	if !strings.EqualFold(providerStatus, interfaces.PaymentStatusApproved) {
		u.metrics.ObservePayment(entities.PaymentMethodGateway, "declined")
		logrus.Warnf("[payment][usecase] payment declined order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerID, providerStatus)
		return entities.Order{}, fmt.Errorf("%w: provider status %s", ErrPaymentDeclined, providerStatus)
	}

	var parsed map[string]any
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			logrus.Warnf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
		}
	}

	paid, err := u.transition(ctx, orderID, func(o *entities.Order) error {
		return o.MarkPaid(entities.Payment{
			Method:            entities.PaymentMethodGateway,
			ProviderPaymentID: providerID,
			ProviderStatus:    providerStatus,
			ProviderResponse:  parsed,
		}, u.now())
	})
	if err != nil {
		logrus.Errorf("[payment][usecase] charged but not recorded order_id=%s provider_payment_id=%s err=%v", orderID, providerID, err)
		return entities.Order{}, err
	}
	u.metrics.ObservePayment(entities.PaymentMethodGateway, "approved")
	logrus.Infof("[payment][usecase] pay success order_id=%s provider_payment_id=%s amount=%s", orderID, providerID, paid.Total().String())
	return paid, nil
}

func (u *QuoteUseCase) paymentPayload(order entities.Order, user entities.User) (json.RawMessage, error) {
	description := "Order " + order.ID
	if order.OrderCode != "" {
		description = "Order " + order.OrderCode
	}
	req := map[string]any{
		"transaction_amount": order.Total().InexactFloat64(),
		"external_reference": order.ID,
		"description":        description,
		"payer":              map[string]any{"email": user.Email, "type": "customer"},
	}
	if u.settings.Currency != "" {
		req["currency_id"] = u.settings.Currency
	}
	return json.Marshal(req)
}

// MarkAsPaid records a payment received outside the gateway.
func (u *QuoteUseCase) MarkAsPaid(ctx context.Context, actor entities.User, orderID string) (entities.Order, error) {
	if !actor.Role.Privileged() {
		return entities.Order{}, ErrForbidden
	}
	order, err := u.transition(ctx, orderID, func(o *entities.Order) error {
		return o.MarkPaid(entities.Payment{Method: entities.PaymentMethodManual, ConfirmedBy: actor.ID}, u.now())
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.metrics.ObservePayment(entities.PaymentMethodManual, "approved")
	logrus.Infof("[payment][usecase] marked paid order_id=%s by=%s", order.ID, actor.ID)
	return order, nil
}

func (u *QuoteUseCase) Fulfill(ctx context.Context, actor entities.User, orderID string) (entities.Order, error) {
	if !actor.Role.Privileged() {
		return entities.Order{}, ErrForbidden
	}
	order, err := u.transition(ctx, orderID, func(o *entities.Order) error {
		return o.Fulfill(u.now())
	})
	if err != nil {
		return entities.Order{}, err
	}
	logrus.Infof("[quote][usecase] fulfilled order_id=%s by=%s", order.ID, actor.ID)
	return order, nil
}

// Get hides other clients' orders behind ErrOrderNotFound. Staff roles see all.
func (u *QuoteUseCase) Get(ctx context.Context, user entities.User, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if user.Role == entities.RoleClient && o.ClientID != user.ID {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ListForClient returns the caller's submitted orders, newest first.
func (u *QuoteUseCase) ListForClient(ctx context.Context, user entities.User) ([]entities.Order, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0)
	for _, o := range all {
		if o.ClientID == user.ID && o.Status != entities.OrderStatusDraft {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *QuoteUseCase) transitionOwned(ctx context.Context, user entities.User, orderID string, fn func(o *entities.Order) error) (entities.Order, error) {
	return u.transition(ctx, orderID, func(o *entities.Order) error {
		if o.ClientID != user.ID {
			return ErrOrderNotFound
		}
		return fn(o)
	})
}

// transition applies fn atomically and reports the status change. A result
// whose fields do not match its status is not written.
func (u *QuoteUseCase) transition(ctx context.Context, orderID string, fn func(o *entities.Order) error) (entities.Order, error) {
	var from entities.OrderStatus
	updated, err := u.mutateOrder(ctx, orderID, func(o *entities.Order) error {
		from = o.Status
		if err := fn(o); err != nil {
			return err
		}
		if err := o.Validate(); err != nil {
			logrus.Errorf("[quote][usecase] inconsistent order rejected order_id=%s err=%v", o.ID, err)
			return err
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	if from != updated.Status {
		u.metrics.ObserveTransition(from, updated.Status)
	}
	return updated, nil
}

func (u *QuoteUseCase) mutateOrder(ctx context.Context, orderID string, fn func(o *entities.Order) error) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.orders.Mutate(ctx, orderID, fn)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func clientDisplayName(user entities.User) string {
	if strings.TrimSpace(user.Name) != "" {
		return user.Name
	}
	return user.Email
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type noopMetrics struct{}

func (noopMetrics) ObserveTransition(entities.OrderStatus, entities.OrderStatus) {}
func (noopMetrics) ObservePayment(entities.PaymentMethod, string)                {}
