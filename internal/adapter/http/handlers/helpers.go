package handlers

import (
	"net/http"

	"ndaje_storefront/internal/adapter/http/middleware"
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireUser writes 401 and returns false when no user is attached.
func requireUser(c *gin.Context) (entities.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, errUnauthorized)
	}
	return user, ok
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
