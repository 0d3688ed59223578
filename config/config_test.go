package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_NAME", "library_test")

	cfg := NewConfig(
		WithLogLevel(zapcore.DebugLevel),
		WithWriteTimeout(time.Minute),
	)

	require.Equal(t, "test-secret", cfg.JWT.Secret)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, "library_test", cfg.Database.Name)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
}
