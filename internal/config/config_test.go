package config_test

import (
	"testing"
	"time"

	"crm/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "vendas")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "pipeline")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("CACHE_TTL", "1m")

	cfg := config.Load()

	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, "host=db port=6543 user=vendas password=s3cret dbname=pipeline sslmode=disable", cfg.DSN())
	assert.Equal(t, "pgx5://vendas:s3cret@db:6543/pipeline?sslmode=disable", cfg.MigrationURL())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")
	t.Setenv("CACHE_TTL", "-5s")

	cfg := config.Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}
