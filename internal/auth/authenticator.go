package auth

import (
	"context"
	"strings"

	apperrors "github.com/umalmyha/poscustomers/internal/errors"
	"github.com/umalmyha/poscustomers/internal/model"
)

// ErrInvalidCredentials is the only failure login reports, it never tells which field was wrong
var ErrInvalidCredentials = apperrors.NewAuthErr("invalid credentials")

// Authenticator verifies credentials and registers accounts
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (model.Identity, error)
	Register(ctx context.Context, name, email, password string) (model.Identity, error)
}

// DemoAuthenticator accepts single fixed credential pair
type DemoAuthenticator struct {
	identity     model.Identity
	passwordHash string
}

// NewDemoAuthenticator builds DemoAuthenticator, password is kept only as bcrypt hash
func NewDemoAuthenticator(name, email, password string) (*DemoAuthenticator, error) {
	hash, err := GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}

	return &DemoAuthenticator{
		identity:     model.Identity{Name: name, Email: email},
		passwordHash: hash,
	}, nil
}

// Authenticate checks credentials against demo account
func (a *DemoAuthenticator) Authenticate(_ context.Context, email, password string) (model.Identity, error) {
	// hash is always compared so timing doesn't depend on email match
	pwdErr := VerifyPassword(a.passwordHash, password)
	if email != a.identity.Email || pwdErr != nil {
		return model.Identity{}, ErrInvalidCredentials
	}
	return a.identity, nil
}

// Register accepts any non-empty account data, account isn't stored anywhere
func (a *DemoAuthenticator) Register(_ context.Context, name, email, password string) (model.Identity, error) {
	if strings.TrimSpace(name) == "" {
		return model.Identity{}, apperrors.NewValidationErr("name", "name is required")
	}

	if strings.TrimSpace(email) == "" {
		return model.Identity{}, apperrors.NewValidationErr("email", "email is required")
	}

	if password == "" {
		return model.Identity{}, apperrors.NewValidationErr("password", "password is required")
	}

	return model.Identity{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}, nil
}
