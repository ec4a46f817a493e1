package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTP     HTTPConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	Log      LogConfig
}

type HTTPConfig struct {
	Addr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	RateLimit      int           `env:"AUTH_RATE_LIMIT" envDefault:"10"`
	RateWindow     time.Duration `env:"AUTH_RATE_WINDOW" envDefault:"1m"`
}

// AuthConfig carries the signing secrets and token lifetimes. The secrets
// have no defaults and must be supplied by the environment.
type AuthConfig struct {
	AccessSecret  string        `env:"SECRET_KEY,required,notEmpty"`
	RefreshSecret string        `env:"REFRESH_SECRET_KEY,required,notEmpty"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`
}

type PostgresConfig struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Host        string `env:"PGHOST" envDefault:"localhost"`
	Port        string `env:"PGPORT" envDefault:"5432"`
	User        string `env:"PGUSER"`
	Password    string `env:"PGPASSWORD"`
	Database    string `env:"PGDATABASE"`
	SSLMode     string `env:"PGSSLMODE" envDefault:"disable"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Auth.AccessSecret == c.Auth.RefreshSecret {
		errs = append(errs, errors.New("SECRET_KEY and REFRESH_SECRET_KEY must differ"))
	}
	if c.Auth.AccessTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	if c.Auth.RefreshTTL <= 0 {
		errs = append(errs, errors.New("REFRESH_TOKEN_TTL must be positive"))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.HTTP.RateLimit <= 0 || c.HTTP.RateWindow <= 0 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT and AUTH_RATE_WINDOW must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is not one of text, json", c.Log.Format))
	}

	return errors.Join(errs...)
}
