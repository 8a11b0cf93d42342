// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the merged config is validated after the
// client view is derived and defaults are applied, see [ClientConfig].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Model == "" || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	// A title without content (or the reverse) is a half-specified run.
	if (cfg.Prompt.Title == "") != (len(cfg.Prompt.Content) == 0) {
		return ErrInvalidPromptConfigs
	}

	// Storing a token requires having one to store.
	if cfg.Prompt.SaveToken && cfg.App.APIToken == "" {
		return ErrInvalidPromptConfigs
	}

	return nil
}
