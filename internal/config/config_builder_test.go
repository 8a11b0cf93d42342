package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning for fields
// they already set.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Model: "phi-3.5-mini-instruct"}},
		&StructuredConfig{
			App:     App{Model: "overridden-later-loses", HashKey: "fp"},
			Adapter: Adapter{HTTPAddress: "http://localhost:8081/v1"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value per field.
	assert.Equal(t, "phi-3.5-mini-instruct", cfg.App.Model)
	assert.Equal(t, "fp", cfg.App.HashKey)
	assert.Equal(t, "http://localhost:8081/v1", cfg.Adapter.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when none of
// the collected configs carries a JSON path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFileSetsError verifies that a dangling JSON path is
// recorded as a builder error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── ClientConfig validation ───────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	return cfg
}

func TestClientConfigValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_RejectsMemoryDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_RejectsEmptyAddress(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestClientConfigValidate_RejectsZeroRefreshInterval(t *testing.T) {
	cfg := validClientConfig()
	cfg.Workers.RefreshInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestClientConfigValidate_RejectsHalfSpecifiedPrompt(t *testing.T) {
	cfg := validClientConfig()
	cfg.Prompt.Title = "My Example"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPromptConfigs)

	cfg = validClientConfig()
	cfg.Prompt.Content = []string{"a fragment"}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPromptConfigs)
}

func TestClientConfigValidate_AcceptsFullPrompt(t *testing.T) {
	cfg := validClientConfig()
	cfg.Prompt.Title = "My Example"
	cfg.Prompt.Content = []string{"a fragment", "another"}
	assert.NoError(t, cfg.validate())
}

func TestClientConfigValidate_SaveTokenRequiresToken(t *testing.T) {
	cfg := validClientConfig()
	cfg.Prompt.SaveToken = true
	assert.ErrorIs(t, cfg.validate(), ErrInvalidPromptConfigs)

	cfg.App.APIToken = "sk-local"
	assert.NoError(t, cfg.validate())
}

// TestApplyDefaults verifies every default value lands where expected.
func TestApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultModel, cfg.App.Model)
	assert.Equal(t, DefaultHashKey, cfg.App.HashKey)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
}

// TestApplyDefaults_DoesNotOverrideExplicit verifies defaults only fill gaps.
func TestApplyDefaults_DoesNotOverrideExplicit(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.Adapter.HTTPAddress = "http://llm.lab:9000/v1"
	cfg.App.Model = "mistral-7b-instruct"
	cfg.applyDefaults()

	assert.Equal(t, "http://llm.lab:9000/v1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "mistral-7b-instruct", cfg.App.Model)
}
