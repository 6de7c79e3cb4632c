package handlers

import (
	"context"
	"errors"
	"net/http"

	response "ndaje_storefront/internal/adapter/http/dto/response"
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Client godoc
// @Summary  Client dashboard: own orders and buckets
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.ClientDashboardResponse
// @Security BearerAuth
// @Router   /v1/dashboard/client [get]
func (h *DashboardHandler) Client(c *gin.Context) {
	serveDashboard(c, h.usecase.Client, response.FromClientDashboard)
}

// Supplier godoc
// @Summary  Supplier dashboard: open orders
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.SupplierDashboardResponse
// @Failure  403 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/dashboard/supplier [get]
func (h *DashboardHandler) Supplier(c *gin.Context) {
	serveDashboard(c, h.usecase.Supplier, response.FromSupplierDashboard)
}

// Manager godoc
// @Summary  Manager dashboard: every order with status counts
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.ManagerDashboardResponse
// @Failure  403 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/dashboard/manager [get]
func (h *DashboardHandler) Manager(c *gin.Context) {
	serveDashboard(c, h.usecase.Manager, response.FromManagerDashboard)
}

// Admin godoc
// @Summary  Admin dashboard: income, top products and recent orders
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.AdminDashboardResponse
// @Failure  403 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/dashboard/admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	serveDashboard(c, h.usecase.Admin, response.FromAdminDashboard)
}

func serveDashboard[D, R any](c *gin.Context, load func(context.Context, entities.User) (D, error), render func(D) R) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	d, err := load(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			respondError(c, mapQuoteError(err))
			return
		}
		respondError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, render(d))
}
