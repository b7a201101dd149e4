package infra

import (
	"context"
	"fmt"

	"github.com/umalmyha/poscustomers/internal/auth"
	"github.com/umalmyha/poscustomers/internal/config"
	"github.com/umalmyha/poscustomers/internal/repository"
	"github.com/umalmyha/poscustomers/internal/service"
	"github.com/umalmyha/poscustomers/internal/validation"
)

// App owns application state, the live session and the customer collection, and services built on it
type App struct {
	Cfg         config.Config
	Validator   *validation.Validator
	AuthSvc     service.AuthService
	CustomerSvc service.CustomerService
}

// NewApp builds application state, customer store is seeded if configured
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build validator - %w", err)
	}

	jwtCfg := cfg.AuthCfg.JwtCfg
	demoCfg := cfg.AuthCfg.DemoAccountCfg

	authenticator, err := auth.NewDemoAuthenticator(demoCfg.Name, demoCfg.Email, demoCfg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to build demo authenticator - %w", err)
	}

	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)

	authSvc := service.NewAuthService(authenticator, jwtIssuer, jwtValidator, repository.NewMemorySessionRepository())
	customerSvc := service.NewCustomerService(repository.NewMemoryCustomerRepository())

	if cfg.StoreCfg.SeedDemoCustomers {
		if err := customerSvc.Seed(ctx, service.DemoCustomers()); err != nil {
			return nil, err
		}
	}

	return &App{
		Cfg:         cfg,
		Validator:   v,
		AuthSvc:     authSvc,
		CustomerSvc: customerSvc,
	}, nil
}
