package handlers

import (
	"context"
	"errors"
	"net/http"

	request "ndaje_storefront/internal/adapter/http/dto/request"
	response "ndaje_storefront/internal/adapter/http/dto/response"
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase"
	"ndaje_storefront/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// QuoteHandler covers the order lifecycle from bucket submission to
// fulfilment. Role gating for privileged routes is done by the router; the
// use case repeats the ownership checks.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

type orderAction func(ctx context.Context, user entities.User, orderID string) (entities.Order, error)

// SubmitBucket godoc
// @Summary  Submit a bucket as a quote request
// @Tags     quotes
// @Produce  json
// @Param    id path string true "bucket id"
// @Success  201 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/buckets/{id}/submit [post]
func (h *QuoteHandler) SubmitBucket(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	order, err := h.usecase.Submit(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// MyQuotes godoc
// @Summary  List the caller's orders, newest first
// @Tags     quotes
// @Produce  json
// @Success  200 {array} response.OrderResponse
// @Security BearerAuth
// @Router   /v1/quotes/client/my-quotes [get]
func (h *QuoteHandler) MyQuotes(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListForClient(c.Request.Context(), user)
	if err != nil {
		respondError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetQuote godoc
// @Summary  Get an order
// @Tags     quotes
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	h.run(c, h.usecase.Get)
}

// BillQuote godoc
// @Summary  Price a quote request
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id   path string true "order id"
// @Param    body body request.BillRequest true "bill amount"
// @Success  200 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/quotes/{id}/bill [post]
func (h *QuoteHandler) BillQuote(c *gin.Context) {
	var payload request.BillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBillAmount)
		return
	}
	h.run(c, func(ctx context.Context, user entities.User, orderID string) (entities.Order, error) {
		return h.usecase.Bill(ctx, user, orderID, payload.Amount)
	})
}

// ApproveQuote godoc
// @Summary  Approve a billed quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/quotes/{id}/client-approve [post]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.run(c, h.usecase.Approve)
}

// RejectQuote godoc
// @Summary  Reject a billed quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id   path string true "order id"
// @Param    body body request.RejectRequest true "reason"
// @Success  200 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/quotes/{id}/client-reject [post]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRejectReason)
		return
	}
	h.run(c, func(ctx context.Context, user entities.User, orderID string) (entities.Order, error) {
		return h.usecase.Reject(ctx, user, orderID, payload.Reason, payload.Note)
	})
}

// ProcessPayment godoc
// @Summary  Pay a billed quote through the payment gateway
// @Tags     quotes
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Failure  402 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/quotes/{id}/process-payment [post]
func (h *QuoteHandler) ProcessPayment(c *gin.Context) {
	h.run(c, h.usecase.Pay)
}

// MarkAsPaid godoc
// @Summary  Record a payment received offline
// @Tags     quotes
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/quotes/{id}/mark-as-paid [post]
func (h *QuoteHandler) MarkAsPaid(c *gin.Context) {
	h.run(c, h.usecase.MarkAsPaid)
}

// FulfillQuote godoc
// @Summary  Mark a paid order as delivered
// @Tags     quotes
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} response.OrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/quotes/{id}/fulfill [post]
func (h *QuoteHandler) FulfillQuote(c *gin.Context) {
	h.run(c, h.usecase.Fulfill)
}

func (h *QuoteHandler) run(c *gin.Context, action orderAction) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	order, err := action(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logrus.Errorf("[quote][handler] %s failed order_id=%s err=%v", c.FullPath(), c.Param("id"), err)
		}
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

var (
	errInvalidBillAmount   = pkg.NewDomainErrorSimple("INVALID_BILL_AMOUNT", "Bill amount must be a positive number", http.StatusBadRequest)
	errInvalidRejectReason = pkg.NewDomainErrorSimple("INVALID_REJECT_REASON", "Reason must be one of price_too_high, delivery_too_slow, found_other_supplier, no_longer_needed, other", http.StatusBadRequest)
)

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidBucketID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBucketNotFound):
		return pkg.NewDomainErrorSimple("BUCKET_NOT_FOUND", "Bucket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBucketSubmitted):
		return pkg.NewDomainErrorSimple("BUCKET_SUBMITTED", "Bucket was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyBucket), errors.Is(err, entities.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("EMPTY_BUCKET", "Bucket has no items", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidBillAmount):
		return errInvalidBillAmount
	case errors.Is(err, entities.ErrInvalidRejectReason):
		return errInvalidRejectReason
	case errors.Is(err, entities.ErrRejectNoteRequired):
		return pkg.NewDomainErrorSimple("REJECT_NOTE_REQUIRED", "A note is required when the reason is other", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for your role", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Order is not in a state that allows this action", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrGatewayNotAvailable):
		return pkg.NewDomainError("PAYMENT_UNAVAILABLE", "Payment gateway is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway failed", err, http.StatusBadGateway)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "Request timed out", err, http.StatusGatewayTimeout)
	case errors.Is(err, context.Canceled):
		return pkg.NewDomainError("CANCELED", "Request was canceled", err, 499)
	default:
		return internalError(err)
	}
}
