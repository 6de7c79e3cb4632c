package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"ndaje_storefront/internal/adapter/http/routes"
	"ndaje_storefront/internal/infrastructure/config"
	"ndaje_storefront/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Ndaje Storefront API
// @version         1.0
// @description     Hotel-supply storefront: catalog, buckets, quotes, payments and role dashboards.

// @host      localhost:4000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("[main] failed to load config err=%v", err)
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := routes.NewApp(ctx, cfg)
	if err != nil {
		logrus.Fatalf("[main] failed to start the application err=%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logrus.Warnf("[main] closing store failed err=%v", err)
		}
	}()

	go app.RunDraftRecovery(ctx)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: app.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("[main] %s listening on %s", cfg.Server.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logrus.Errorf("[main] server stopped err=%v", err)
		}
	case <-ctx.Done():
		logrus.Info("[main] shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("[main] graceful shutdown failed err=%v", err)
	}
}
