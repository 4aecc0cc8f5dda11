package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/gymfit")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "500ms")
	t.Setenv("SMTP_USE_SSL", "true")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.RateLimit.RefillInterval)
	assert.True(t, cfg.SMTP.UseSSL)
	assert.Equal(t, "gymfit.events", cfg.EventQueue)
}

func TestEnvHelpersFallBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	t.Setenv("SOME_BOOL", "maybe")
	t.Setenv("SOME_DURATION", "soon")

	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
	assert.True(t, getEnvBool("SOME_BOOL", true))
	assert.Equal(t, time.Second, getEnvDuration("SOME_DURATION", time.Second))
	assert.Equal(t, "fallback", getEnv("MISSING_KEY_FOR_TEST", "fallback"))
	assert.Nil(t, splitList(" , "))
}
