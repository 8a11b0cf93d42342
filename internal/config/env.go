// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// legacyAPIBaseEnv is the variable name the original lab scripts used for the
// model server base URL. It is honored as an alias for ADAPTER_ADDRESS so
// existing Docker Compose setups keep working unchanged.
const legacyAPIBaseEnv = "LLM_API_BASE"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = os.Getenv(legacyAPIBaseEnv)
	}

	return nil
}
