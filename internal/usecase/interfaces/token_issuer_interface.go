package interfaces

import (
	"ndaje_storefront/internal/domain/entities"
	"time"
)

// ITokenIssuer signs and verifies the bearer tokens handed out by the auth stub.
type ITokenIssuer interface {
	Issue(user entities.User) (token string, expiresAt time.Time, err error)
	Parse(token string) (entities.User, error)
}
