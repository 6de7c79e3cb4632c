package handlers

import (
	"net/http"

	response "ndaje_storefront/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200 {object} response.HealthResponse
// @Router   / [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Service: h.service})
}
