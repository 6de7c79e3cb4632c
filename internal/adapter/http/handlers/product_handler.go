package handlers

import (
	"net/http"

	response "ndaje_storefront/internal/adapter/http/dto/response"
	"ndaje_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary  List catalog products
// @Tags     products
// @Produce  json
// @Param    category query string false "category filter (all for every category)"
// @Param    q        query string false "search in name and description"
// @Success  200 {array} response.ProductResponse
// @Security BearerAuth
// @Router   /v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		respondError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}
