package config

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// ServerCfg is transport configuration
type ServerCfg struct {
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"3000"`
	GrpcPort        int           `env:"GRPC_PORT" envDefault:"3010"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LogCfg is logger configuration
type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// JwtCfg is access token configuration
type JwtCfg struct {
	Issuer         string        `env:"AUTH_JWT_ISSUER" envDefault:"pos-customers"`
	TimeToLive     time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"12h"`
	PrivateKeyFile string        `env:"AUTH_JWT_PRIVATE_KEY_FILE"`
	PublicKeyFile  string        `env:"AUTH_JWT_PUBLIC_KEY_FILE"`
	SigningMethod  jwt.SigningMethod
	PrivateKey     crypto.PrivateKey
	PublicKey      crypto.PublicKey
}

// DemoAccountCfg is the only account accepted on login
type DemoAccountCfg struct {
	Name     string `env:"AUTH_DEMO_NAME" envDefault:"Admin"`
	Email    string `env:"AUTH_DEMO_EMAIL" envDefault:"admin@pos.rw"`
	Password string `env:"AUTH_DEMO_PASSWORD" envDefault:"admin123"`
}

// AuthCfg is auth gateway configuration
type AuthCfg struct {
	Https          bool    `env:"AUTH_HTTPS" envDefault:"false"`
	SessionCookie  string  `env:"AUTH_SESSION_COOKIE" envDefault:"pos-session"`
	LoginRateLimit float64 `env:"AUTH_LOGIN_RATE_LIMIT" envDefault:"5"`
	JwtCfg         JwtCfg
	DemoAccountCfg DemoAccountCfg
}

// StoreCfg is customer store configuration
type StoreCfg struct {
	SeedDemoCustomers bool `env:"SEED_DEMO_CUSTOMERS" envDefault:"true"`
}

// Config is application configuration
type Config struct {
	ServerCfg ServerCfg
	LogCfg    LogCfg
	AuthCfg   AuthCfg
	StoreCfg  StoreCfg
}

// Build reads .env file if present and parses environment variables
func Build() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file - %w", err)
	}
	return Parse()
}

// Parse parses environment variables and loads jwt keys
func Parse() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if err := loadJwtKeys(&cfg.AuthCfg.JwtCfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadJwtKeys reads PEM key pair, ephemeral key pair is generated when no files configured
func loadJwtKeys(cfg *JwtCfg) error {
	cfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	if cfg.PrivateKeyFile == "" && cfg.PublicKeyFile == "" {
		publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return fmt.Errorf("failed to generate key pair for jwt - %w", err)
		}
		cfg.PrivateKey = privateKey
		cfg.PublicKey = publicKey
		return nil
	}

	if cfg.PrivateKeyFile == "" || cfg.PublicKeyFile == "" {
		return errors.New("both AUTH_JWT_PRIVATE_KEY_FILE and AUTH_JWT_PUBLIC_KEY_FILE must be set")
	}

	jwtPrivateKeyBytes, err := os.ReadFile(cfg.PrivateKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	jwtPrivateKey, err := jwt.ParseEdPrivateKeyFromPEM(jwtPrivateKeyBytes)
	if err != nil {
		return fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	cfg.PrivateKey = jwtPrivateKey

	jwtPublicKeyBytes, err := os.ReadFile(cfg.PublicKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.PublicKey = jwtPublicKey

	return nil
}
