package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ndaje_storefront/internal/adapter/http/middleware"
	"ndaje_storefront/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	testClient  = entities.User{ID: "u_client", Email: "front@lakeview.rw", Name: "front", Role: entities.RoleClient}
	testManager = entities.User{ID: "u_manager", Email: "ops@ndaje.rw", Name: "ops", Role: entities.RoleManager}
)

// newTestRouter returns a router that attaches user to every request; a zero
// user leaves the request anonymous.
func newTestRouter(user entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user.ID != "" {
		r.Use(func(c *gin.Context) {
			middleware.SetUser(c, user)
			c.Next()
		})
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
}
