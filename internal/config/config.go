package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/validator"
	"github.com/joho/godotenv"
)

const (
	SourceSample   = "sample"
	SourcePostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Chart    ChartConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// ChartConfig holds attendance chart configuration
type ChartConfig struct {
	Source          string // sample, postgres
	AverageScope    attendance.AverageScope
	TeamConcurrency int
}

// Load reads configuration from the environment, after loading a .env file
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
		slog.Debug("no .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "cmlasb-hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Chart configuration
	averageScope, err := attendance.ParseAverageScope(getEnv("CHART_AVERAGE_SCOPE", string(attendance.ScopeAllRecords)))
	if err != nil {
		return nil, fmt.Errorf("invalid CHART_AVERAGE_SCOPE: %w", err)
	}

	teamConcurrency, err := strconv.Atoi(getEnv("CHART_TEAM_CONCURRENCY", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHART_TEAM_CONCURRENCY: %w", err)
	}

	config.Chart = ChartConfig{
		Source:          strings.ToLower(getEnv("CHART_SOURCE", SourceSample)),
		AverageScope:    averageScope,
		TeamConcurrency: teamConcurrency,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Chart.TeamConcurrency < 1 {
		return fmt.Errorf("CHART_TEAM_CONCURRENCY must be at least 1")
	}
	switch c.Chart.Source {
	case SourceSample:
	case SourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres source")
		}
	default:
		return fmt.Errorf("%w: %q", attendance.ErrUnknownSourceType, c.Chart.Source)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string. User and password
// are escaped, so they may contain URL delimiters.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	return validator.SplitCSV(getEnv(env, fallback))
}
