package routes

import (
	"ndaje_storefront/internal/adapter/http/handlers"
	"ndaje_storefront/internal/adapter/http/middleware"
	"ndaje_storefront/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathProducts  = "/products"
	PathBuckets   = "/buckets"
	PathQuotes    = "/quotes"
	PathDashboard = "/dashboard"
)

func addAuthRoutes(r gin.IRouter, h *handlers.AuthHandler) {
	auth := r.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	rg.GET(PathProducts, h.ListProducts)
}

func addBucketRoutes(rg *gin.RouterGroup, h *handlers.BucketHandler, quotes *handlers.QuoteHandler) {
	buckets := rg.Group(PathBuckets)
	{
		buckets.POST("", h.CreateBucket)
		buckets.GET("", h.ListBuckets)
		buckets.GET("/:id", h.GetBucket)
		buckets.PATCH("/:id", h.RenameBucket)
		buckets.DELETE("/:id", h.DeleteBucket)
		buckets.POST("/:id/items", h.AddItem)
		buckets.PATCH("/:id/items/:product_id", h.UpdateItem)
		buckets.DELETE("/:id/items/:product_id", h.RemoveItem)
		buckets.POST("/:id/submit", quotes.SubmitBucket)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	privileged := middleware.RequireRoles(entities.RoleManager)

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/client/my-quotes", h.MyQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.POST("/:id/client-approve", h.ApproveQuote)
		quotes.POST("/:id/client-reject", h.RejectQuote)
		quotes.POST("/:id/process-payment", h.ProcessPayment)

		quotes.POST("/:id/bill", privileged, h.BillQuote)
		quotes.POST("/:id/mark-as-paid", privileged, h.MarkAsPaid)
		quotes.POST("/:id/fulfill", privileged, h.FulfillQuote)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/client", h.Client)
		dashboard.GET("/supplier", middleware.RequireRoles(entities.RoleSupplier, entities.RoleManager), h.Supplier)
		dashboard.GET("/manager", middleware.RequireRoles(entities.RoleManager), h.Manager)
		dashboard.GET("/admin", middleware.RequireRoles(entities.RoleAdmin), h.Admin)
	}
}
