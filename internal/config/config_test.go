package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("CLIENT_SERVER_URL", "http://festivize.local:8080")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "http://festivize.local:8080", cfg.Client.ServerURL)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"auth": {"token_sign_key": "json-key", "token_duration": "45m"},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://localhost/festivize"}},
		"server": {"http_address": "0.0.0.0:9090", "request_timeout": "20s"},
		"client": {"server_url": "http://localhost:9090", "expiry_check_interval": "30s"}
	}`), 0o644))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/festivize", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Client.ExpiryCheckInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"eventually"`), &d))
}

func TestConfigBuilder_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "from-env"}},
		&StructuredConfig{
			Auth:   Auth{TokenSignKey: "from-json", TokenIssuer: "festivize"},
			Server: Server{HTTPAddress: "0.0.0.0:8080"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps values that are already set, so earlier sources take
	// precedence and later ones only fill gaps.
	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, "festivize", cfg.Auth.TokenIssuer)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
}

func TestServerConfig_DefaultsAndValidation(t *testing.T) {
	cfg := &ServerConfig{
		Auth:    Auth{TokenSignKey: "key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/festivize"}},
	}
	cfg.applyDefaults()
	require.NoError(t, cfg.validate())

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "festivize", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "uploads", cfg.Storage.Files.ImagesDir)
}

func TestServerConfig_Validate(t *testing.T) {
	noKey := &ServerConfig{Storage: Storage{DB: DB{DSN: "dsn"}}}
	noKey.applyDefaults()
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAuthConfigs)

	noDSN := &ServerConfig{Auth: Auth{TokenSignKey: "key"}}
	noDSN.applyDefaults()
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfig_Defaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	require.NoError(t, cfg.validate())

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.ExpiryCheckInterval)
	assert.Empty(t, cfg.SessionFile, "persistence stays off unless configured")
}
