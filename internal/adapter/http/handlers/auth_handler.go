package handlers

import (
	"context"
	"errors"
	"net/http"

	request "ndaje_storefront/internal/adapter/http/dto/request"
	response "ndaje_storefront/internal/adapter/http/dto/response"
	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const msgCredentialsRequired = "email and password are required"

// AuthHandler serves the credential stub. Its 400 body is a bare
// {"message"} object, which the storefront client reads directly.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Log in (stub: any email/password pair is accepted)
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.CredentialsRequest true "credentials"
// @Success  200 {object} response.AuthResponse
// @Failure  400 {object} response.MessageResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	h.authenticate(c, http.StatusOK, h.usecase.Login)
}

// Signup godoc
// @Summary  Sign up (stub)
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.CredentialsRequest true "credentials"
// @Success  201 {object} response.AuthResponse
// @Failure  400 {object} response.MessageResponse
// @Router   /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	h.authenticate(c, http.StatusCreated, h.usecase.Signup)
}

func (h *AuthHandler) authenticate(
	c *gin.Context,
	status int,
	fn func(ctx context.Context, email, password string, role entities.Role) (usecase.AuthResult, error),
) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logrus.Warnf("[auth][handler] invalid credentials payload err=%v", err)
		c.JSON(http.StatusBadRequest, response.MessageResponse{Message: msgCredentialsRequired})
		return
	}

	res, err := fn(c.Request.Context(), payload.Email, payload.Password, payload.ResolveRole())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, response.MessageResponse{Message: msgCredentialsRequired})
		case errors.Is(err, usecase.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, response.MessageResponse{Message: "role must be one of client, supplier, manager, admin"})
		default:
			logrus.Errorf("[auth][handler] authenticate failed err=%v", err)
			c.JSON(http.StatusInternalServerError, response.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	c.JSON(status, response.FromAuthResult(res))
}
