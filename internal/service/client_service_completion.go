// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/adapter"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/prompt"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/store"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/utils"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

// Sampling defaults for the lab's Phi instruct models. Low top_p and
// temperature keep the runs close to deterministic so reruns of a saved
// example stay comparable.
const (
	defaultTopP        = 0.1
	defaultTemperature = 0.3
	defaultMaxTokens   = 1024
)

type clientCompletionService struct {
	appCfg   config.ClientApp
	adapter  adapter.ModelServerAdapter
	examples ClientExampleService
	uuid     *utils.UUIDGenerator

	// mu guards model, the catalog selection overriding the configured
	// default for subsequent runs.
	mu    sync.RWMutex
	model string
}

func NewClientCompletionService(appCfg config.ClientApp, serverAdapter adapter.ModelServerAdapter, examples ClientExampleService) ClientCompletionService {
	return &clientCompletionService{
		appCfg:   appCfg,
		adapter:  serverAdapter,
		examples: examples,
		uuid:     utils.NewUUIDGenerator(),
	}
}

// UseModel overrides the configured model for subsequent runs. An empty name
// falls back to the configured default.
func (c *clientCompletionService) UseModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// Model returns the model the next run will use.
func (c *clientCompletionService) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.model != "" {
		return c.model
	}
	return c.appCfg.Model
}

func (c *clientCompletionService) Complete(ctx context.Context, title string, fragments []string, onToken func(models.StreamToken)) (models.Example, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(title) == "" {
		return models.Example{}, ErrEmptyTitle
	}

	body := prompt.Compose(fragments)
	if body == "" {
		return models.Example{}, ErrEmptyPrompt
	}
	if c.Model() == "" {
		return models.Example{}, ErrNoModelConfigured
	}

	messages := prompt.BuildMessages(c.appCfg.SystemPrompt, body)
	req := c.buildRequest(prompt.FormatMessages(messages))

	runID := c.uuid.Generate()
	ctx = context.WithValue(ctx, utils.RunIDCtxKey, runID)

	log.Debug().
		Str("run_id", runID).
		Str("model", req.Model).
		Str("title", title).
		Int("fragments", len(fragments)).
		Msg("starting completion run")

	result, err := c.stream(ctx, req, onToken)
	if err != nil {
		return models.Example{}, mapAdapterError(err)
	}

	example := models.Example{
		ExampleID:   runID,
		Title:       title,
		Model:       req.Model,
		Prompt:      body,
		Response:    result.Response,
		Fingerprint: c.examples.Fingerprint(req.Model, body),
		TokenCount:  result.TokenCount,
		Elapsed:     result.Elapsed,
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.examples.Save(ctx, example); err != nil {
		if errors.Is(err, store.ErrDuplicateExample) {
			log.Debug().
				Str("fingerprint", example.Fingerprint).
				Msg("rerun of a saved example, skipping save")
			return example, nil
		}
		return models.Example{}, fmt.Errorf("record finished run: %w", err)
	}

	return example, nil
}

func (c *clientCompletionService) buildRequest(formattedPrompt string) models.CompletionRequest {
	return models.CompletionRequest{
		Prompt:      formattedPrompt,
		Model:       c.Model(),
		Stream:      true,
		TopP:        defaultTopP,
		Temperature: defaultTemperature,
		Stop:        prompt.StopTokens(),
		MaxTokens:   defaultMaxTokens,
	}
}

// stream drains the adapter's token channel, forwarding each token to
// onToken and aggregating the final result.
func (c *clientCompletionService) stream(ctx context.Context, req models.CompletionRequest, onToken func(models.StreamToken)) (models.StreamResult, error) {
	tokens, errs := c.adapter.CompleteStream(ctx, req)

	var (
		response strings.Builder
		count    int
		elapsed  time.Duration
	)

	for token := range tokens {
		response.WriteString(token.Content)
		count++
		elapsed = token.Elapsed

		if onToken != nil {
			onToken(token)
		}
	}

	if err := <-errs; err != nil {
		return models.StreamResult{}, fmt.Errorf("completion stream: %w", err)
	}

	return models.StreamResult{
		Response:   response.String(),
		TokenCount: count,
		Elapsed:    elapsed,
	}, nil
}
