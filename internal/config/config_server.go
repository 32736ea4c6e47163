package config

import (
	"fmt"
	"time"
)

// ServerConfig is the backend-specific configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Auth contains JWT issuance settings.
	Auth Auth
	// Storage contains database and image store settings.
	Storage Storage
	// Server contains network addresses and timeouts.
	Server Server
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration, applying defaults where sources left
// gaps.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Auth:    cfg.Auth,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = "festivize"
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = time.Hour
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = "pgx"
	}
	if cfg.Storage.Files.ImagesDir == "" {
		cfg.Storage.Files.ImagesDir = "uploads"
	}
}

func (cfg *ServerConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
