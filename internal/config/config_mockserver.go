// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Defaults for the stand-in model server. The address matches the port the
// client points at out of the box.
const (
	DefaultMockServerAddress = ":8081"
)

// MockServerConfig configures the stand-in model server process. It is read
// from the environment only: the mock server has no one-shot flags to share
// with the client flag set.
type MockServerConfig struct {
	// Address is the listen address.
	// Env: MOCKLLM_ADDRESS
	Address string `env:"MOCKLLM_ADDRESS"`

	// Models is the catalog the server reports and accepts completions for.
	// Env: MOCKLLM_MODELS (comma-separated)
	Models []string `env:"MOCKLLM_MODELS" envSeparator:","`
}

// GetMockServerConfig loads the mock server configuration from the
// environment and applies the package defaults for anything unset.
func GetMockServerConfig() (*MockServerConfig, error) {
	cfg := &MockServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing mock server env: %w", err)
	}

	if cfg.Address == "" {
		cfg.Address = DefaultMockServerAddress
	}
	if len(cfg.Models) == 0 {
		cfg.Models = []string{DefaultModel}
	}

	return cfg, nil
}
