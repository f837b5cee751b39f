package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ServerPort:     "5000",
		RequestTimeout: 30 * time.Second,
		DatabaseURL:    "postgres://localhost:5432/jobtracker",
		JWTSecret:      "secret",
		JWTTTL:         time.Hour,
		CookieName:     "jwt",
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing secret", func(c *Config) { c.JWTSecret = "" }},
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }},
		{"empty port", func(c *Config) { c.ServerPort = "" }},
		{"non-positive ttl", func(c *Config) { c.JWTTTL = 0 }},
		{"empty cookie name", func(c *Config) { c.CookieName = " " }},
		{"non-positive request timeout", func(c *Config) { c.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := validConfig()

	cfg.Environment = "development"
	assert.False(t, cfg.IsProduction())

	cfg.Environment = "Production"
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/jobtracker")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "jwt", cfg.CookieName)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Minute, cfg.DBConnLifetime)
	assert.Equal(t, 5*time.Minute, cfg.DBConnIdleTime)
	assert.Equal(t, 30*time.Second, cfg.DBHealthCheckPeriod)
	assert.Equal(t, 100, cfg.RateLimitRPM)
	assert.Equal(t, 20, cfg.AuthRateLimitRPM)
}
