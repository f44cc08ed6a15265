package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Fixed operating parameters. The struct below exists so tests can
// substitute a mock endpoint and a temporary credentials path; production
// runs always use these values.
const (
	DefaultTokenEndpoint    = "https://console.anthropic.com/v1/oauth/token"
	DefaultClientID         = "9d1c250a-e61b-44d9-88ed-5944d1962f5e"
	DefaultRefreshThreshold = 2 * time.Hour
	DefaultRequestTimeout   = 30 * time.Second
	DefaultExpiresIn        = 8 * time.Hour
)

const (
	credentialsDir  = ".claude"
	credentialsFile = ".credentials.json"
)

// Config holds all parameters of the refresh operation
type Config struct {
	CredentialsPath  string        `mapstructure:"credentials_path"`   // path to the credentials JSON document
	TokenEndpoint    string        `mapstructure:"token_endpoint"`     // OAuth2 token endpoint URL
	ClientID         string        `mapstructure:"client_id"`          // public OAuth2 client id
	RefreshThreshold time.Duration `mapstructure:"refresh_threshold"`  // refresh when less than this remains
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`    // bound on the token request
	DefaultExpiresIn time.Duration `mapstructure:"default_expires_in"` // assumed validity when the server omits expires_in
}

// DefaultCredentialsPath returns the fixed credentials file location
// under the user's home directory
func DefaultCredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, credentialsDir, credentialsFile), nil
}

// Load builds the configuration from the compiled-in defaults.
// There is intentionally no environment or flag binding: endpoint, client
// id, threshold, and file path are fixed parameters of the tool.
func Load() (*Config, error) {
	credsPath, err := DefaultCredentialsPath()
	if err != nil {
		return nil, err
	}

	v := viper.New()

	// Set defaults
	v.SetDefault("credentials_path", credsPath)
	v.SetDefault("token_endpoint", DefaultTokenEndpoint)
	v.SetDefault("client_id", DefaultClientID)
	v.SetDefault("refresh_threshold", DefaultRefreshThreshold)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("default_expires_in", DefaultExpiresIn)

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.CredentialsPath == "" {
		return fmt.Errorf("credentials_path must not be empty")
	}
	if c.TokenEndpoint == "" {
		return fmt.Errorf("token_endpoint must not be empty")
	}
	if c.ClientID == "" {
		return fmt.Errorf("client_id must not be empty")
	}
	if c.RefreshThreshold <= 0 {
		return fmt.Errorf("refresh_threshold must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.DefaultExpiresIn <= 0 {
		return fmt.Errorf("default_expires_in must be positive")
	}
	return nil
}
