package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "/api", cfg.EndpointPrefix)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, ModeFallback, cfg.Mode)
	assert.Equal(t, 0.08, cfg.TaxRate)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.StoragePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":4000")
	t.Setenv("GATEWAY_MODE", "mock")
	t.Setenv("TAX_RATE", "0")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.ListenAddr)
	assert.Equal(t, ModeMock, cfg.Mode)
	assert.Equal(t, 0.0, cfg.TaxRate)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("GATEWAY_MODE", "offline")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE", "eight percent")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TAX_RATE", "-0.1")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
	_, err := Load()
	assert.Error(t, err)
}
