package handlers

import (
	"errors"
	"net/http"
	"testing"

	"ndaje_storefront/internal/adapter/http/dto/response"
	"ndaje_storefront/internal/adapter/http/handlers/mocks"
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestBucketHandler(t *testing.T) {
	setup := func(t *testing.T, user entities.User) (*mocks.MockIBucketUseCase, http.Handler) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBucketUseCase(ctrl)
		h := NewBucketHandler(uc)
		r := newTestRouter(user)
		r.POST("/v1/buckets", h.CreateBucket)
		r.GET("/v1/buckets", h.ListBuckets)
		r.GET("/v1/buckets/:id", h.GetBucket)
		r.PATCH("/v1/buckets/:id", h.RenameBucket)
		r.DELETE("/v1/buckets/:id", h.DeleteBucket)
		r.POST("/v1/buckets/:id/items", h.AddItem)
		r.PATCH("/v1/buckets/:id/items/:product_id", h.UpdateItem)
		r.DELETE("/v1/buckets/:id/items/:product_id", h.RemoveItem)
		return uc, r
	}
	bucket := entities.Bucket{
		ID: "b-1", OwnerID: testClient.ID, Name: "Sunny Linens",
		Items: []entities.LineItem{{ProductRef: "1", Name: "Premium Bath Towels", UnitPrice: decimal.NewFromInt(45000), Quantity: 2}},
	}

	t.Run("anonymous request is rejected", func(t *testing.T) {
		_, r := setup(t, entities.User{})
		w := doJSON(t, r, http.MethodGet, "/v1/buckets", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("create without body generates a name", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().CreateBucket(gomock.Any(), testClient.ID, "").Return(entities.Bucket{ID: "b-1", Name: "Sunny Linens"}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/buckets", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create with name", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().CreateBucket(gomock.Any(), testClient.ID, "Spa refill").Return(entities.Bucket{ID: "b-2", Name: "Spa refill"}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/buckets", `{"name":"Spa refill"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().ListBuckets(gomock.Any(), testClient.ID).Return([]entities.Bucket{bucket}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/buckets", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.BucketResponse
		decodeBody(t, w, &body)
		if len(body) != 1 || body[0].ID != "b-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().GetBucket(gomock.Any(), testClient.ID, "missing").Return(entities.Bucket{}, usecase.ErrBucketNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/buckets/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("rename requires body", func(t *testing.T) {
		_, r := setup(t, testClient)
		w := doJSON(t, r, http.MethodPatch, "/v1/buckets/b-1", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete submitted bucket conflicts", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().DeleteBucket(gomock.Any(), testClient.ID, "b-1").Return(usecase.ErrBucketSubmitted)

		w := doJSON(t, r, http.MethodDelete, "/v1/buckets/b-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().DeleteBucket(gomock.Any(), testClient.ID, "b-1").Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/buckets/b-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("add item rejects zero quantity before the use case", func(t *testing.T) {
		_, r := setup(t, testClient)
		w := doJSON(t, r, http.MethodPost, "/v1/buckets/b-1/items", `{"product_id":"1","quantity":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add unknown product", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().AddItem(gomock.Any(), testClient.ID, "b-1", "99", 1).Return(entities.Bucket{}, usecase.ErrProductNotFound)

		w := doJSON(t, r, http.MethodPost, "/v1/buckets/b-1/items", `{"product_id":"99","quantity":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update item", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().UpdateItem(gomock.Any(), testClient.ID, "b-1", "1", 2).Return(bucket, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/buckets/b-1/items/1", `{"quantity":2}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove item unexpected error", func(t *testing.T) {
		uc, r := setup(t, testClient)
		uc.EXPECT().RemoveItem(gomock.Any(), testClient.ID, "b-1", "1").Return(entities.Bucket{}, errors.New("redis down"))

		w := doJSON(t, r, http.MethodDelete, "/v1/buckets/b-1/items/1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
