package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidRole        = errors.New("invalid role")
)

// userNamespace scopes the name-based user ids.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://ndaje.rw/users"))

type AuthResult struct {
	User      entities.User
	Token     string
	ExpiresAt time.Time
}

// IAuthUseCase is a credential stub: any non-empty email and password pair is
// accepted. Login defaults to the admin role, signup to client.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string, role entities.Role) (AuthResult, error)
	Signup(ctx context.Context, email, password string, role entities.Role) (AuthResult, error)
}

type AuthUseCase struct {
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string, role entities.Role) (AuthResult, error) {
	return u.authenticate(ctx, email, password, role, entities.RoleAdmin)
}

func (u *AuthUseCase) Signup(ctx context.Context, email, password string, role entities.Role) (AuthResult, error) {
	return u.authenticate(ctx, email, password, role, entities.RoleClient)
}

func (u *AuthUseCase) authenticate(_ context.Context, email, password string, role, fallback entities.Role) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrMissingCredentials
	}
	if role == "" {
		role = fallback
	}
	if !role.Valid() {
		return AuthResult{}, ErrInvalidRole
	}

	user := UserForEmail(email, role)
	token, exp, err := u.tokens.Issue(user)
	if err != nil {
		logrus.Errorf("[auth][usecase] token issue failed user_id=%s err=%v", user.ID, err)
		return AuthResult{}, err
	}
	logrus.Infof("[auth][usecase] authenticated user_id=%s role=%s", user.ID, user.Role)
	return AuthResult{User: user, Token: token, ExpiresAt: exp}, nil
}

// UserForEmail derives a stable identity from an e-mail address.
func UserForEmail(email string, role entities.Role) entities.User {
	email = strings.TrimSpace(email)
	key := strings.ToLower(email)
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return entities.User{
		ID:    "u_" + uuid.NewSHA1(userNamespace, []byte(key)).String(),
		Email: email,
		Name:  name,
		Role:  role,
	}
}
