package routes

import (
	"context"
	"errors"
	"time"

	"ndaje_storefront/internal/adapter/http/handlers"
	"ndaje_storefront/internal/adapter/persistence/repository"
	"ndaje_storefront/internal/infrastructure/auth"
	"ndaje_storefront/internal/infrastructure/catalog"
	"ndaje_storefront/internal/infrastructure/config"
	"ndaje_storefront/internal/infrastructure/database"
	"ndaje_storefront/internal/infrastructure/metrics"
	"ndaje_storefront/internal/infrastructure/payments"
	"ndaje_storefront/internal/usecase"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// App is the wired service: router plus what the process needs to run
// background work and release resources.
type App struct {
	Router *gin.Engine
	Quotes usecase.IQuoteUseCase

	recovery config.RecoveryConfig
	close    func() error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	kv, closeStore, err := database.NewKeyValueStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	orderRepo := repository.NewOrderKVRepository(kv, cfg.Store.OrdersKey)
	bucketRepo := repository.NewBucketKVRepository(kv, cfg.Store.BucketsKey)
	products := catalog.NewSeededCatalog()
	tokens := auth.NewJWTIssuer(cfg.Auth)
	m := metrics.New(cfg.Server.ServiceName)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		logrus.Warnf("[app][wiring] payment gateway not configured err=%v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(orderRepo, bucketRepo, paymentGateway, m, usecase.QuoteSettings{
		PaymentDelay: cfg.Payments.SimulatedDelay,
		Currency:     cfg.Payments.Currency,
	})

	h := Handlers{
		Health:    handlers.NewHealthHandler(cfg.Server.ServiceName),
		Auth:      handlers.NewAuthHandler(usecase.NewAuthUseCase(tokens)),
		Products:  handlers.NewProductHandler(usecase.NewProductUseCase(products)),
		Buckets:   handlers.NewBucketHandler(usecase.NewBucketUseCase(bucketRepo, products)),
		Quotes:    handlers.NewQuoteHandler(quoteUseCase),
		Dashboard: handlers.NewDashboardHandler(usecase.NewDashboardUseCase(orderRepo, bucketRepo)),
	}

	router, err := NewRouter(cfg, h, tokens, m)
	if err != nil {
		return nil, errors.Join(err, closeStore())
	}

	return &App{
		Router:   router,
		Quotes:   quoteUseCase,
		recovery: cfg.Recovery,
		close:    closeStore,
	}, nil
}

// RecoverDrafts runs one recovery pass; failures are logged and retried on
// the next pass.
func (a *App) RecoverDrafts(ctx context.Context) {
	if _, err := a.Quotes.RecoverDrafts(ctx, a.recovery.DraftMaxAge); err != nil {
		logrus.Errorf("[app][recovery] draft recovery failed err=%v", err)
	}
}

// RunDraftRecovery recovers drafts once, then on every interval tick until
// ctx is done. A non-positive interval disables the ticker.
func (a *App) RunDraftRecovery(ctx context.Context) {
	a.RecoverDrafts(ctx)
	if a.recovery.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(a.recovery.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.RecoverDrafts(ctx)
		}
	}
}

func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}
