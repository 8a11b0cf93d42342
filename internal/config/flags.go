package config

import (
	"flag"
	"strings"
	"time"
)

// ContentFragments collects repeated -c flag values in order.
// It implements the flag.Value interface.
type ContentFragments []string

// String returns the fragments joined with single spaces, which is exactly
// how they are composed into the prompt body.
func (c *ContentFragments) String() string {
	return strings.Join(*c, " ")
}

// Set appends one fragment. Called once per -c occurrence.
func (c *ContentFragments) Set(s string) error {
	*c = append(*c, s)
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-t prompt title
//	-c content fragment (repeatable; trailing positional args are appended)
//	-m model name
//	-s system prompt
//	-a model server base URL
//	-d example library DSN (SQLite path or postgres:// URI)
//	-token API bearer token
//	-save-token encrypt and store the -token value in the library
//	-use-saved-token decrypt and use the stored token
//	-hash-key example fingerprint key
//	-request-timeout outbound request timeout (e.g., "30s", "2m")
//	-refresh-interval model catalog refresh interval (e.g., "1m")
//	-config json file path with configs
func ParseFlags() *StructuredConfig {
	var title string
	var content ContentFragments
	var model string
	var systemPrompt string
	var address string
	var databaseDSN string
	var apiToken string
	var saveToken bool
	var useSavedToken bool
	var hashKey string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&title, "t", "", "Prompt title")
	flag.Var(&content, "c", "Content fragment (repeatable)")
	flag.StringVar(&model, "m", "", "Model name")
	flag.StringVar(&systemPrompt, "s", "", "System prompt")
	flag.StringVar(&address, "a", "", "Model server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Example library DSN")
	flag.StringVar(&apiToken, "token", "", "API bearer token")
	flag.BoolVar(&saveToken, "save-token", false, "Encrypt and store the API token")
	flag.BoolVar(&useSavedToken, "use-saved-token", false, "Use the stored API token")
	flag.StringVar(&hashKey, "hash-key", "", "Example fingerprint key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 2m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Model catalog refresh interval (e.g., 1m)")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path")

	flag.Parse()

	// argparse's nargs="+" accepted several fragments after one -c; the
	// closest flag-package shape is repeated -c plus trailing args.
	content = append(content, flag.Args()...)

	return &StructuredConfig{
		App: App{
			Model:        model,
			SystemPrompt: systemPrompt,
			APIToken:     apiToken,
			HashKey:      hashKey,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Prompt: Prompt{
			Title:         title,
			Content:       content,
			SaveToken:     saveToken,
			UseSavedToken: useSavedToken,
		},
		JSONFilePath: jsonConfigPath,
	}
}
