package routes

import (
	"net/http"
	"slices"

	_ "ndaje_storefront/docs"
	"ndaje_storefront/internal/adapter/http/dto/request"
	"ndaje_storefront/internal/adapter/http/handlers"
	"ndaje_storefront/internal/adapter/http/middleware"
	"ndaje_storefront/internal/infrastructure/config"
	"ndaje_storefront/internal/infrastructure/metrics"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Products  *handlers.ProductHandler
	Buckets   *handlers.BucketHandler
	Quotes    *handlers.QuoteHandler
	Dashboard *handlers.DashboardHandler
}

// NewRouter builds the gin engine. Public routes are /, /auth/*, /metrics and
// /swagger; everything under /v1 needs a bearer token.
func NewRouter(cfg *config.Config, h Handlers, tokens interfaces.ITokenIssuer, m *metrics.Metrics) (*gin.Engine, error) {
	if err := request.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, cfg, m)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	router.GET("/", h.Health.Health)
	addAuthRoutes(router, h.Auth)

	v1 := router.Group("/v1", middleware.Authenticate(tokens))
	addCatalogRoutes(v1, h.Products)
	addBucketRoutes(v1, h.Buckets, h.Quotes)
	addQuoteRoutes(v1, h.Quotes)
	addDashboardRoutes(v1, h.Dashboard)

	return router, nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.Errorf("[http][router] recovered from panic path=%s err=%v", c.Request.URL.Path, recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))
	router.Use(m.Middleware())
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
