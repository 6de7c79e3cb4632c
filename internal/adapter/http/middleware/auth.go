package middleware

import (
	"net/http"
	"strings"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"
	"ndaje_storefront/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const userContextKey = "ndaje.user"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for your role", http.StatusForbidden)
)

// Authenticate resolves the bearer token into the current user.
func Authenticate(tokens interfaces.ITokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		user, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			logrus.Debugf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// RequireRoles lets admins and the listed roles through.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if user.Role == entities.RoleAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func SetUser(c *gin.Context, user entities.User) {
	c.Set(userContextKey, user)
}

func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}
