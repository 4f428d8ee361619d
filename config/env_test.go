package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("VERCEL", "1")
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_IDLE_TIMEOUT", "")
	t.Setenv("ORDER_QUEUE", "")

	cfg := LoadConfig()

	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.QueueVisibilityTimeout)
	assert.Equal(t, "ordersqueue", cfg.OrderQueue)
	assert.Equal(t, "messages", cfg.FunctionQueue)
	assert.Equal(t, int64(5242880), cfg.MaxUploadSize)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("VERCEL", "1")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_PORT", "")
	t.Setenv("SESSION_IDLE_TIMEOUT", "10m")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

func TestBuildDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", buildDSN(cfg))

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", buildDSN(cfg))
}
