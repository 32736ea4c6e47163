package config

import (
	"fmt"
	"time"
)

// ClientConfig is the terminal-client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// ServerURL is the base URL of the festivize backend.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// SessionFile is where the bearer token is persisted between runs.
	// Empty disables persistence.
	SessionFile string
	// ExpiryCheckInterval is the session expiry poll interval.
	ExpiryCheckInterval time.Duration
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration, applying defaults where sources left
// gaps.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:           cfg.Client.ServerURL,
		RequestTimeout:      cfg.Client.RequestTimeout,
		SessionFile:         cfg.Client.SessionFile,
		ExpiryCheckInterval: cfg.Client.ExpiryCheckInterval,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.ExpiryCheckInterval == 0 {
		cfg.ExpiryCheckInterval = time.Minute
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	if cfg.ExpiryCheckInterval <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
