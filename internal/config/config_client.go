package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when neither environment, flags, nor
// the JSON file provide a value. The address and model defaults match the
// lab's Docker Compose setup.
const (
	DefaultHTTPAddress     = "http://localhost:8081/v1"
	DefaultModel           = "phi-3.5-mini-instruct"
	DefaultDSN             = "ai-lab.db"
	DefaultHashKey         = "ai-lab"
	DefaultRequestTimeout  = 2 * time.Minute
	DefaultRefreshInterval = 1 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Model is the model name used for completion requests.
	Model string
	// SystemPrompt is the optional system message for every run.
	SystemPrompt string
	// APIToken is the optional bearer token for the model server.
	APIToken string
	// HashKey is the HMAC key used for example fingerprints.
	HashKey string
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the model server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL connection string for the
	// example library.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the model catalog refresh job runs.
	RefreshInterval time.Duration
}

// ClientPrompt carries the one-shot prompt inputs.
type ClientPrompt struct {
	Title         string
	Content       []string
	SaveToken     bool
	UseSavedToken bool
}

// OneShot reports whether the invocation carries a complete one-shot prompt,
// i.e. both a title and at least one content fragment were supplied.
func (p ClientPrompt) OneShot() bool {
	return p.Title != "" && len(p.Content) > 0
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Prompt contains the one-shot prompt inputs.
	Prompt ClientPrompt
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies the package defaults for anything
// still unset, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Model:        cfg.App.Model,
			SystemPrompt: cfg.App.SystemPrompt,
			APIToken:     cfg.App.APIToken,
			HashKey:      cfg.App.HashKey,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Prompt: ClientPrompt{
			Title:         cfg.Prompt.Title,
			Content:       cfg.Prompt.Content,
			SaveToken:     cfg.Prompt.SaveToken,
			UseSavedToken: cfg.Prompt.UseSavedToken,
		},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.Model == "" {
		cfg.App.Model = DefaultModel
	}
	if cfg.App.HashKey == "" {
		cfg.App.HashKey = DefaultHashKey
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
}
