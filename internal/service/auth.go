package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/poscustomers/internal/auth"
	apperrors "github.com/umalmyha/poscustomers/internal/errors"
	"github.com/umalmyha/poscustomers/internal/model"
	"github.com/umalmyha/poscustomers/internal/repository"
)

var errNotSignedIn = apperrors.NewAuthErr("you are not signed in")

// AuthService represents auth gateway behavior
type AuthService interface {
	Login(ctx context.Context, email, password string, at time.Time) (*model.Session, error)
	Signup(ctx context.Context, name, email, password, confirmPassword string, at time.Time) (*model.Session, error)
	Logout(context.Context) error
	Identity(context.Context) (*model.Identity, error)
	Verify(ctx context.Context, token string) (*model.Identity, error)
}

type authService struct {
	authenticator auth.Authenticator
	jwtIssuer     *auth.JwtIssuer
	jwtValidator  *auth.JwtValidator
	sessionRps    repository.SessionRepository
}

// NewAuthService builds new auth service
func NewAuthService(
	authenticator auth.Authenticator,
	jwtIssuer *auth.JwtIssuer,
	jwtValidator *auth.JwtValidator,
	sessionRps repository.SessionRepository,
) AuthService {
	return &authService{
		authenticator: authenticator,
		jwtIssuer:     jwtIssuer,
		jwtValidator:  jwtValidator,
		sessionRps:    sessionRps,
	}
}

func (s *authService) Login(ctx context.Context, email, password string, at time.Time) (*model.Session, error) {
	identity, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		logrus.Debugf("login attempt for %s rejected - %v", email, err)
		return nil, err
	}
	return s.startSession(ctx, identity, at)
}

func (s *authService) Signup(ctx context.Context, name, email, password, confirmPassword string, at time.Time) (*model.Session, error) {
	if confirmPassword == "" {
		return nil, apperrors.NewValidationErr("confirmPassword", "confirmPassword is required")
	}

	if password != "" && password != confirmPassword {
		return nil, apperrors.NewAuthErr("passwords don't match")
	}

	identity, err := s.authenticator.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, identity, at)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessionRps.Clear(ctx)
}

func (s *authService) Identity(ctx context.Context) (*model.Identity, error) {
	sess, err := s.sessionRps.Current(ctx)
	if err != nil {
		return nil, err
	}

	if sess == nil || sess.Expired(time.Now().UTC()) {
		return nil, errNotSignedIn
	}

	identity := sess.Identity
	return &identity, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*model.Identity, error) {
	claims, err := s.jwtValidator.Verify(token)
	if err != nil {
		return nil, apperrors.NewAuthErr("invalid access token provided")
	}

	sess, err := s.sessionRps.Current(ctx)
	if err != nil {
		return nil, err
	}

	// token of previous session must not be accepted after logout or re-login
	if sess == nil || sess.ID != claims.ID {
		return nil, errNotSignedIn
	}

	identity := claims.Identity()
	return &identity, nil
}

func (s *authService) startSession(ctx context.Context, identity model.Identity, at time.Time) (*model.Session, error) {
	id := uuid.NewString()

	jwt, err := s.jwtIssuer.Sign(id, identity, at)
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		ID:        id,
		Identity:  identity,
		Token:     jwt.Signed,
		ExpiresAt: jwt.ExpiresAt,
		CreatedAt: at,
	}

	if err := s.sessionRps.Replace(ctx, sess); err != nil {
		return nil, err
	}

	logrus.Infof("%s signed in", identity.Email)
	return sess, nil
}
