package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// devSecret signs tokens in dev/test when SECRET is unset. Never valid in prod.
const devSecret = "dev-secret-change-me"

type Config struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	DatabaseURL string `yaml:"database_url"`
	Store       string `yaml:"store"` // "postgres" or "memory"
	CORSOrigins string `yaml:"cors_origins"`
	// Auth
	Secret     string        `yaml:"secret"` // HS256 signing secret, read-only after startup
	TokenTTL   time.Duration `yaml:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
	// Guarded variant of the like update (identity + ownership required)
	RequireOwnerForLikes bool `yaml:"require_owner_for_likes"`
	// Logging
	LogDir      string `yaml:"log_dir"`
	LogMaxFiles int    `yaml:"log_max_files"`
}

// Load builds the configuration: defaults, then the optional YAML file named
// by CONFIG_FILE, then environment variables.
func Load() (*Config, error) {
	cfg := defaults(getEnv("ENVIRONMENT", "dev"))

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if cfg.Secret == "" && cfg.Environment != "prod" {
		cfg.Secret = devSecret
	}

	return cfg, cfg.Validate()
}

func defaults(env string) *Config {
	return &Config{
		Port:        "3003",
		Environment: env,
		Store:       StorePostgres,
		CORSOrigins: "http://localhost:5173",
		TokenTTL:    time.Hour,
		BcryptCost:  10,
		LogMaxFiles: 10,
	}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.Store = getEnv("STORE", c.Store)
	c.CORSOrigins = getEnv("CORS_ORIGINS", c.CORSOrigins)
	c.Secret = getEnv("SECRET", c.Secret)
	c.LogDir = getEnv("LOG_DIR", c.LogDir)

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		c.TokenTTL = ttl
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BCRYPT_COST: %w", err)
		}
		c.BcryptCost = cost
	}
	if v := os.Getenv("LOG_MAX_FILES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LOG_MAX_FILES: %w", err)
		}
		c.LogMaxFiles = n
	}
	if v := os.Getenv("REQUIRE_OWNER_FOR_LIKES"); v != "" {
		c.RequireOwnerForLikes = strings.EqualFold(v, "true")
	}

	return nil
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}

	if c.Secret == "" {
		return errors.New("SECRET is required")
	}
	if c.Environment == "prod" && c.Secret == devSecret {
		return errors.New("SECRET must be set in prod")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}

	return nil
}

// IsDev reports whether the server runs in the dev environment
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
