package handlers

import (
	"errors"
	"net/http"

	request "ndaje_storefront/internal/adapter/http/dto/request"
	response "ndaje_storefront/internal/adapter/http/dto/response"
	"ndaje_storefront/internal/usecase"
	"ndaje_storefront/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBucketPayload = pkg.NewDomainErrorSimple("INVALID_BUCKET_INPUT", "Invalid bucket payload", http.StatusBadRequest)

// BucketHandler exposes the caller's buckets. Every route acts on the
// authenticated user's own buckets only.
type BucketHandler struct {
	usecase usecase.IBucketUseCase
}

func NewBucketHandler(uc usecase.IBucketUseCase) *BucketHandler {
	return &BucketHandler{usecase: uc}
}

// CreateBucket godoc
// @Summary  Create a bucket (a friendly name is generated when blank)
// @Tags     buckets
// @Accept   json
// @Produce  json
// @Param    body body request.CreateBucketRequest false "bucket"
// @Success  201 {object} response.BucketResponse
// @Security BearerAuth
// @Router   /v1/buckets [post]
func (h *BucketHandler) CreateBucket(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var payload request.CreateBucketRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidBucketPayload)
			return
		}
	}

	b, err := h.usecase.CreateBucket(c.Request.Context(), user.ID, payload.Name)
	if err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBucket(b))
}

// ListBuckets godoc
// @Summary  List the caller's buckets
// @Tags     buckets
// @Produce  json
// @Success  200 {array} response.BucketResponse
// @Security BearerAuth
// @Router   /v1/buckets [get]
func (h *BucketHandler) ListBuckets(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	buckets, err := h.usecase.ListBuckets(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBuckets(buckets))
}

// GetBucket godoc
// @Summary  Get a bucket
// @Tags     buckets
// @Produce  json
// @Param    id path string true "bucket id"
// @Success  200 {object} response.BucketResponse
// @Failure  404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/buckets/{id} [get]
func (h *BucketHandler) GetBucket(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	b, err := h.usecase.GetBucket(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBucket(b))
}

// RenameBucket godoc
// @Summary  Rename a bucket
// @Tags     buckets
// @Accept   json
// @Produce  json
// @Param    id   path string true "bucket id"
// @Param    body body request.RenameBucketRequest true "new name"
// @Success  200 {object} response.BucketResponse
// @Security BearerAuth
// @Router   /v1/buckets/{id} [patch]
func (h *BucketHandler) RenameBucket(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var payload request.RenameBucketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBucketPayload)
		return
	}

	b, err := h.usecase.RenameBucket(c.Request.Context(), user.ID, c.Param("id"), payload.Name)
	if err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBucket(b))
}

// DeleteBucket godoc
// @Summary  Delete an unsubmitted bucket
// @Tags     buckets
// @Param    id path string true "bucket id"
// @Success  204
// @Failure  409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router   /v1/buckets/{id} [delete]
func (h *BucketHandler) DeleteBucket(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteBucket(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary  Add a product to a bucket (merges with an existing line)
// @Tags     buckets
// @Accept   json
// @Produce  json
// @Param    id   path string true "bucket id"
// @Param    body body request.AddItemRequest true "item"
// @Success  200 {object} response.BucketResponse
// @Security BearerAuth
// @Router   /v1/buckets/{id}/items [post]
func (h *BucketHandler) AddItem(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBucketPayload)
		return
	}

	b, err := h.usecase.AddItem(c.Request.Context(), user.ID, c.Param("id"), payload.ProductID, payload.Quantity)
	if err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBucket(b))
}

// UpdateItem godoc
// @Summary  Change the quantity of a bucket line
// @Tags     buckets
// @Accept   json
// @Produce  json
// @Param    id         path string true "bucket id"
// @Param    product_id path string true "product id"
// @Param    body       body request.UpdateItemRequest true "quantity"
// @Success  200 {object} response.BucketResponse
// @Security BearerAuth
// @Router   /v1/buckets/{id}/items/{product_id} [patch]
func (h *BucketHandler) UpdateItem(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBucketPayload)
		return
	}

	b, err := h.usecase.UpdateItem(c.Request.Context(), user.ID, c.Param("id"), c.Param("product_id"), payload.Quantity)
	if err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBucket(b))
}

// RemoveItem godoc
// @Summary  Remove a product from a bucket
// @Tags     buckets
// @Produce  json
// @Param    id         path string true "bucket id"
// @Param    product_id path string true "product id"
// @Success  200 {object} response.BucketResponse
// @Security BearerAuth
// @Router   /v1/buckets/{id}/items/{product_id} [delete]
func (h *BucketHandler) RemoveItem(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	b, err := h.usecase.RemoveItem(c.Request.Context(), user.ID, c.Param("id"), c.Param("product_id"))
	if err != nil {
		respondError(c, mapBucketError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBucket(b))
}

func mapBucketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBucketID), errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be at least 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBucketNotFound):
		return pkg.NewDomainErrorSimple("BUCKET_NOT_FOUND", "Bucket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBucketSubmitted):
		return pkg.NewDomainErrorSimple("BUCKET_SUBMITTED", "Bucket was already submitted", http.StatusConflict)
	default:
		return internalError(err)
	}
}
