package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ndaje_storefront/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("test")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/quotes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/v1/quotes/a", "/v1/quotes/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/v1/quotes/:id", "GET", "200")); got != 2 {
		t.Fatalf("expected 2 requests on templated route, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}

func TestObserveTransition(t *testing.T) {
	m := New("test")
	m.ObserveTransition(entities.OrderStatusQuoteRequested, entities.OrderStatusBilled)
	m.ObservePayment(entities.PaymentMethodGateway, "approved")

	if got := testutil.ToFloat64(m.transitions.WithLabelValues("quote_requested", "billed")); got != 1 {
		t.Fatalf("expected 1 transition, got %v", got)
	}
	if got := testutil.ToFloat64(m.payments.WithLabelValues("gateway", "approved")); got != 1 {
		t.Fatalf("expected 1 payment, got %v", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveTransition(entities.OrderStatusBilled, entities.OrderStatusApproved)
}
