package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	MigrationsPath    string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// LoginRateLimit uses the limiter format "<limit>-<period>", e.g. "5-M".
	LoginRateLimit     string
	CORSAllowedOrigins []string

	// MapperAcceptZeroValues lets request payloads carry false, 0 and "".
	MapperAcceptZeroValues bool
}

// UsesDatabase reports whether a PostgreSQL URL was configured. Without one
// the API runs on the in-memory store.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "object-dto")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAPPER_ACCEPT_ZERO_VALUES", false)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		MigrationsPath:         v.GetString("MIGRATIONS_PATH"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTIssuer:              v.GetString("JWT_ISSUER"),
		LoginRateLimit:         v.GetString("LOGIN_RATE_LIMIT"),
		CORSAllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MapperAcceptZeroValues: v.GetBool("MAPPER_ACCEPT_ZERO_VALUES"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL not set. Falling back to the in-memory store.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set. Using default.", slog.String("port", cfg.Port))
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		slog.Warn("Invalid value for JWT_EXPIRY_DURATION. Using default.",
			slog.String("value", jwtExpiryStr), slog.Duration("default", jwtExpiryDuration))
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "object-dto"
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations"
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
