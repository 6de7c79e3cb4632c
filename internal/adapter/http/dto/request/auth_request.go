package request

import (
	"strings"

	"ndaje_storefront/internal/domain/entities"
)

// CredentialsRequest is the body of /auth/login and /auth/signup. Presence is
// checked by the handler so the error body matches the storefront contract.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r CredentialsRequest) ResolveRole() entities.Role {
	return entities.Role(strings.ToLower(strings.TrimSpace(r.Role)))
}
