package service

import (
	"context"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientModelService defines the client-side contract for the model catalog.
// The catalog is fetched from the model server and cached in memory so the
// TUI can render a picker without a round trip per keystroke.
type ClientModelService interface {
	// List returns the model catalog. A cached copy is served when one
	// exists; otherwise the catalog is fetched from the server first.
	List(ctx context.Context) (models.ModelList, error)

	// Refresh fetches the catalog from the server unconditionally and
	// replaces the cache. Called by the background refresh job.
	Refresh(ctx context.Context) error

	// Cached returns the current in-memory catalog without touching the
	// network. The list is empty until the first List or Refresh call.
	Cached() models.ModelList
}

// ClientCompletionService runs prompts against the model server. It owns the
// whole pipeline of a run: composing the prompt body from fragments,
// rendering the chat template, streaming the completion, and recording the
// finished run in the example library.
type ClientCompletionService interface {
	// Complete streams a completion for the given title and content
	// fragments. Every received token is passed to onToken as it arrives
	// (onToken may be nil). The finished run is saved to the example
	// library and returned.
	//
	// A rerun of an already-saved example is not an error: the stream runs
	// normally and the duplicate save is skipped.
	Complete(ctx context.Context, title string, fragments []string, onToken func(models.StreamToken)) (models.Example, error)

	// UseModel overrides the configured model for subsequent runs, e.g.
	// after a pick from the catalog screen. An empty name restores the
	// configured default.
	UseModel(model string)

	// Model returns the model the next run will use.
	Model() string
}

// ClientExampleService manages the local library of recorded runs.
type ClientExampleService interface {
	// Save records a finished run. Returns store.ErrDuplicateExample when
	// an example with the same fingerprint already exists.
	Save(ctx context.Context, example models.Example) error

	// Get loads a single example by id.
	Get(ctx context.Context, exampleID string) (models.Example, error)

	// List returns the library filtered by filter; the zero filter returns
	// everything, newest first.
	List(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error)

	// Delete soft-deletes an example from the library.
	Delete(ctx context.Context, exampleID string) error

	// Purge physically removes soft-deleted rows and reports how many were
	// dropped.
	Purge(ctx context.Context) (int64, error)

	// Fingerprint computes the deterministic fingerprint for a model+prompt
	// pair, used to spot reruns.
	Fingerprint(model, prompt string) string
}

// ClientCredentialService stores the model server API token encrypted at
// rest so it does not have to be passed on every invocation.
type ClientCredentialService interface {
	// SaveToken seals token and persists it under the default credential
	// name, replacing any previous token.
	SaveToken(ctx context.Context, token string) error

	// LoadToken loads and unseals the saved token. Returns
	// store.ErrCredentialNotFound when no token has been saved.
	LoadToken(ctx context.Context) (string, error)

	// DeleteToken removes the saved token.
	DeleteToken(ctx context.Context) error
}

// ClientRefreshJob defines the contract for the background worker that keeps
// the model catalog warm.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 1 minute if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
