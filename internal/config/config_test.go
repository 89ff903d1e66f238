package config

import (
	"net/url"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("CHART_SOURCE", "")
	t.Setenv("CHART_AVERAGE_SCOPE", "")
	t.Setenv("CHART_TEAM_CONCURRENCY", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, SourceSample, cfg.Chart.Source)
	assert.Equal(t, attendance.ScopeAllRecords, cfg.Chart.AverageScope)
	assert.Equal(t, 4, cfg.Chart.TeamConcurrency)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CHART_SOURCE", "Postgres")
	t.Setenv("CHART_AVERAGE_SCOPE", "window")
	t.Setenv("CHART_TEAM_CONCURRENCY", "8")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.Chart.Source)
	assert.Equal(t, attendance.ScopeChartWindow, cfg.Chart.AverageScope)
	assert.Equal(t, 8, cfg.Chart.TeamConcurrency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Contains(t, cfg.DatabaseURL(), ":secret@")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"MissingSecret", map[string]string{"JWT_SECRET_KEY": ""}},
		{"InvalidPort", map[string]string{"APP_PORT": "eighty"}},
		{"InvalidScope", map[string]string{"CHART_AVERAGE_SCOPE": "month"}},
		{"InvalidConcurrency", map[string]string{"CHART_TEAM_CONCURRENCY": "0"}},
		{"UnknownSource", map[string]string{"CHART_SOURCE": "csv"}},
		{"PostgresWithoutPassword", map[string]string{"CHART_SOURCE": "postgres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_UnknownSource(t *testing.T) {
	cfg := &Config{
		JWT:   JWTConfig{Secret: "s"},
		Chart: ChartConfig{Source: "csv", TeamConcurrency: 1},
	}
	assert.ErrorIs(t, cfg.Validate(), attendance.ErrUnknownSourceType)
}

func TestDatabaseURL_EscapesCredentials(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "hris reader",
		Password: "p@ss:w/rd?#",
		Name:     "hris",
		SSLMode:  "require",
	}}

	u, err := url.Parse(cfg.DatabaseURL())
	require.NoError(t, err)

	password, ok := u.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss:w/rd?#", password)
	assert.Equal(t, "hris reader", u.User.Username())
	assert.Equal(t, "db.internal:5433", u.Host)
	assert.Equal(t, "/hris", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
}
