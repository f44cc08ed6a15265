package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenEndpoint, cfg.TokenEndpoint)
	assert.Equal(t, DefaultClientID, cfg.ClientID)
	assert.Equal(t, 2*time.Hour, cfg.RefreshThreshold)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 8*time.Hour, cfg.DefaultExpiresIn)

	assert.True(t, filepath.IsAbs(cfg.CredentialsPath))
	assert.True(t, strings.HasSuffix(cfg.CredentialsPath, filepath.Join(".claude", ".credentials.json")))

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			CredentialsPath:  "/tmp/.credentials.json",
			TokenEndpoint:    DefaultTokenEndpoint,
			ClientID:         DefaultClientID,
			RefreshThreshold: DefaultRefreshThreshold,
			RequestTimeout:   DefaultRequestTimeout,
			DefaultExpiresIn: DefaultExpiresIn,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty credentials path",
			mutate:  func(c *Config) { c.CredentialsPath = "" },
			wantErr: "credentials_path",
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.TokenEndpoint = "" },
			wantErr: "token_endpoint",
		},
		{
			name:    "empty client id",
			mutate:  func(c *Config) { c.ClientID = "" },
			wantErr: "client_id",
		},
		{
			name:    "zero threshold",
			mutate:  func(c *Config) { c.RefreshThreshold = 0 },
			wantErr: "refresh_threshold",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.RequestTimeout = -time.Second },
			wantErr: "request_timeout",
		},
		{
			name:    "zero default expiry",
			mutate:  func(c *Config) { c.DefaultExpiresIn = 0 },
			wantErr: "default_expires_in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
