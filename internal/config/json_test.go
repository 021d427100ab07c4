package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"password_pepper": "pepper",
			"password_hash_cost": 12,
			"token_sign_key": "secret",
			"token_issuer": "melodia",
			"token_duration": "2h"
		},
		"storage": {"db": {"dsn": "postgres://localhost/melodia"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "15s"},
		"workers": {"chart_refresh_interval": "10m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "pepper", cfg.App.PasswordPepper)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "melodia", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/melodia", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.ChartRefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also be given as nanosecond numbers
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileDoesNotExist(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestValidate_MissingPepper(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			PasswordHashCost: 10,
			TokenSignKey:     "k",
			TokenIssuer:      "i",
			TokenDuration:    time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/melodia"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			PasswordPepper:   "p",
			PasswordHashCost: 10,
			TokenSignKey:     "k",
			TokenIssuer:      "i",
			TokenDuration:    time.Hour,
		},
		Server: Server{HTTPAddress: "localhost:8080"},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_OK(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			PasswordPepper:   "p",
			PasswordHashCost: 10,
			TokenSignKey:     "k",
			TokenIssuer:      "i",
			TokenDuration:    time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/melodia"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}

	assert.NoError(t, cfg.validate())
}
