package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" or raw nanosecond numbers.
	jsonBody := `{
		"app": {
			"model": "phi-3.5-mini-instruct",
			"system_prompt": "You are a helpful assistant.",
			"api_token": "sk-local",
			"hash_key": "fingerprint_secret",
			"version": "1.2.3"
		},
		"adapter": {
			"address": "http://localhost:8081/v1",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "lab.db" }
		},
		"workers": {
			"refresh_interval": "1m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "phi-3.5-mini-instruct", cfg.App.Model)
	assert.Equal(t, "You are a helpful assistant.", cfg.App.SystemPrompt)
	assert.Equal(t, "sk-local", cfg.App.APIToken)
	assert.Equal(t, "fingerprint_secret", cfg.App.HashKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://localhost:8081/v1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "lab.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{"adapter": {"request_timeout": 30000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
