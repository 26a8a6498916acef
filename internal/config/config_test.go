// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }},
		{"unknown store backend", func(c *Config) { c.Store.Backend = "redis" }},
		{"badger without path", func(c *Config) { c.Store.Path = "" }},
		{"unknown catalog source", func(c *Config) { c.Catalog.Source = "ftp" }},
		{"remote catalog without url", func(c *Config) { c.Catalog.Source = "remote" }},
		{"zero rate limit", func(c *Config) { c.API.RateLimitReqs = 0 }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_RateLimitIgnoredWhenDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.RateLimitDisabled = true
	cfg.API.RateLimitReqs = 0

	assert.NoError(t, cfg.Validate())
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"STORE_BACKEND", "store.backend"},
		{"STORE_PATH", "store.path"},
		{"CATALOG_URL", "catalog.url"},
		{"LOG_LEVEL", "logging.level"},
		{"CORS_ORIGINS", "api.cors_origins"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, envTransformFunc(tt.env), tt.env)
	}
}

func TestLoadWithKoanf_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
store:
  backend: memory
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))
	t.Setenv(ConfigPathEnvVar, cfgPath)
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "env beats file")
	assert.Equal(t, "memory", cfg.Store.Backend, "file beats defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout, "defaults fill the rest")
}

func TestLoadWithKoanf_CORSFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.API.CORSOrigins)
}

func TestLoadWithKoanf_InvalidConfigRejected(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")

	_, err := LoadWithKoanf()
	assert.Error(t, err)
}
