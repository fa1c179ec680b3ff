package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidNullPolicy        = errors.New("invalid import null policy")
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Twilio   TwilioConfig
	Redis    RedisConfig
	Import   ImportConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// TwilioConfig holds WhatsApp delivery credentials. Sending is disabled when AccountSID is empty.
type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string
}

// Enabled reports whether WhatsApp messages can be delivered through Twilio.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.WhatsAppFrom != ""
}

// RedisConfig holds Redis settings for the public lookup rate limiter
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	// LookupsPerMinute is the per-IP budget for the public bonus lookup.
	LookupsPerMinute int
}

// ImportConfig holds spreadsheet ingestion settings
type ImportConfig struct {
	// NetworkManager, when set, drops data rows whose "Network manager" column differs.
	NetworkManager   string
	ErrorSampleLimit int
	// NullPolicy is "keep" (incoming empty fields leave stored values) or "clear".
	NullPolicy     string
	MaxUploadBytes int64
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Twilio is optional; without it messages can only be previewed.
	cfg.Twilio.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Twilio.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Twilio.WhatsAppFrom = os.Getenv("TWILIO_WHATSAPP_FROM")

	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.Redis.LookupsPerMinute, err = intEnv("PUBLIC_LOOKUPS_PER_MINUTE", "20"); err != nil {
		return nil, err
	}

	cfg.Import.NetworkManager = strings.TrimSpace(os.Getenv("IMPORT_NETWORK_MANAGER"))
	if cfg.Import.ErrorSampleLimit, err = intEnv("IMPORT_ERROR_SAMPLE_LIMIT", "10"); err != nil {
		return nil, err
	}
	cfg.Import.NullPolicy = getEnvWithDefault("IMPORT_NULL_POLICY", "keep")
	if cfg.Import.NullPolicy != "keep" && cfg.Import.NullPolicy != "clear" {
		return nil, fmt.Errorf("IMPORT_NULL_POLICY=%q: %w", cfg.Import.NullPolicy, ErrInvalidNullPolicy)
	}
	maxUpload, err := intEnv("IMPORT_MAX_UPLOAD_MB", "20")
	if err != nil {
		return nil, err
	}
	cfg.Import.MaxUploadBytes = int64(maxUpload) << 20

	if cfg.Server.Port, err = intEnv("SERVER_PORT", "8080"); err != nil {
		return nil, err
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return n, nil
}
