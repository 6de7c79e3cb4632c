package response

import (
	"time"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// MessageResponse is the bare {"message"} body the auth stub answers with.
type MessageResponse struct {
	Message string `json:"message"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{User: FromUser(r.User), Token: r.Token, ExpiresAt: r.ExpiresAt}
}
