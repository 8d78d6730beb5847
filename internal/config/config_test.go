package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ramenku/ramenku/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.App.Port)
	require.Equal(t, "bolt", cfg.Storage.Backend)
	require.Equal(t, "ramenku.db", cfg.Storage.BoltPath)
	require.Equal(t, 2*time.Second, cfg.Payment.Delay)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("PAYMENT_DELAY", "0s")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, "redis", cfg.Storage.Backend)
	require.Equal(t, "redis.internal:6379", cfg.Storage.RedisAddr)
	require.Equal(t, time.Duration(0), cfg.Payment.Delay)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")

	_, err := config.Load("")
	require.Error(t, err)
}

func TestLoad_RejectsBadPaymentDelay(t *testing.T) {
	t.Setenv("PAYMENT_DELAY", "soon")

	_, err := config.Load("")
	require.Error(t, err)
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	_, err := config.Load("does-not-exist.env")
	require.NoError(t, err)
}
