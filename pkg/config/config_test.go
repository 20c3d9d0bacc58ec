package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Address())
	assert.Equal(t, "catalog", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TLSEnabled)
	assert.True(t, cfg.TLSSelfSigned)
	assert.Equal(t, "certs/cert.pem", cfg.TLSCertFile)
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, cfg.Hosts())
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9000\nTLS_ENABLED=true\nTLS_HOSTS=api.local, ,10.0.0.1\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.TLSEnabled)
	assert.Equal(t, []string{"api.local", "10.0.0.1"}, cfg.Hosts())
}

func TestEnvironmentOverridesEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=9000\n"), 0o644))
	t.Setenv("PORT", "7000")
	t.Setenv("GRPC_ENABLED", "true")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.True(t, cfg.GRPCEnabled)
}
