// Package config loads server configuration from the environment and
// assembles the service from it.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tendant/media-backend/pkg/mediabackend"
	repomemory "github.com/tendant/media-backend/pkg/mediabackend/repo/memory"
	repopg "github.com/tendant/media-backend/pkg/mediabackend/repo/postgres"
	memorystorage "github.com/tendant/media-backend/pkg/mediabackend/storage/memory"
	s3storage "github.com/tendant/media-backend/pkg/mediabackend/storage/s3"
)

// ServerConfig holds the environment-driven configuration for the
// media backend server.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"3000"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// Comma-separated list of allowed CORS origins.
	AllowedOrigins string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://localhost:19006"`

	// Secret used to sign login tokens. Required outside development.
	JWTSecret string `env:"JWT_SECRET" env-default:"development-secret"`

	// If empty or "memory", an in-memory repository is used. A
	// postgres:// or postgresql:// URL selects the Postgres repository.
	DatabaseURL string `env:"DATABASE_URL" env-default:""`

	S3 S3Config
}

// S3Config configures the asset bucket. When Bucket is empty the server
// falls back to in-memory object storage.
type S3Config struct {
	Region          string `env:"AWS_REGION" env-default:"us-east-1"`
	Bucket          string `env:"AWS_S3_BUCKET" env-default:""`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
}

// Load reads configuration from the environment.
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that cannot produce a working server.
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.DatabaseURL != "" && c.DatabaseURL != "memory" &&
		!strings.HasPrefix(c.DatabaseURL, "postgres://") &&
		!strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return fmt.Errorf("unsupported DATABASE_URL format: %s (use 'memory' or 'postgresql://...')", c.DatabaseURL)
	}
	if c.Environment == "production" && c.JWTSecret == "development-secret" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

// Origins returns the configured CORS origins as a slice.
func (c *ServerConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildService assembles a mediabackend.Service from the configuration.
func (c *ServerConfig) BuildService(ctx context.Context) (mediabackend.Service, error) {
	repo, err := c.buildRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	store, err := c.buildObjectStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build object store: %w", err)
	}

	return mediabackend.New(
		mediabackend.WithRepository(repo),
		mediabackend.WithObjectStore(store),
	)
}

func (c *ServerConfig) buildRepository(ctx context.Context) (mediabackend.Repository, error) {
	if c.DatabaseURL == "" || c.DatabaseURL == "memory" {
		return repomemory.New(), nil
	}

	pool, err := pgxpool.New(ctx, c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return repopg.NewWithPool(pool), nil
}

func (c *ServerConfig) buildObjectStore() (mediabackend.ObjectStore, error) {
	if c.S3.Bucket == "" {
		return memorystorage.New(), nil
	}
	return s3storage.New(s3storage.Config{
		Region:          c.S3.Region,
		Bucket:          c.S3.Bucket,
		AccessKeyID:     c.S3.AccessKeyID,
		SecretAccessKey: c.S3.SecretAccessKey,
		Endpoint:        c.S3.Endpoint,
		UsePathStyle:    c.S3.UsePathStyle,
	})
}
